//go:build unit

package queue_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"auction-engine/internal/infra/queue"
	"auction-engine/tests/common/redistest"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamQueue(t *testing.T) {
	t.Run("delivers and acknowledges", func(t *testing.T) {
		_, client := redistest.New(t)
		q := queue.NewStreamQueue(client, "bids", "reconcilers", fastRedelivery, slog.Default())
		require.NoError(t, q.EnsureGroup(context.Background()))
		require.NoError(t, q.EnsureGroup(context.Background()))

		ev := event(3)
		require.NoError(t, q.Enqueue(context.Background(), ev))

		rec := &recorder{}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Consume(ctx, "consumer-0", rec.handle) }()

		assert.Eventually(t, func() bool { return rec.count() == 1 }, 3*time.Second, 10*time.Millisecond)
		cancel()
		require.NoError(t, <-done)

		got := rec.seen[0]
		assert.Equal(t, ev.RequestID, got.RequestID)
		assert.True(t, ev.Amount.Equal(got.Amount))
		assert.True(t, ev.AcceptedAt.Equal(got.AcceptedAt))

		pending, err := client.XPending(context.Background(), "bids", "reconcilers").Result()
		require.NoError(t, err)
		assert.Zero(t, pending.Count)
	})

	t.Run("failed delivery stays pending for the next start", func(t *testing.T) {
		_, client := redistest.New(t)
		noClaim := fastRedelivery
		noClaim.ClaimIdle = time.Hour
		q := queue.NewStreamQueue(client, "bids", "reconcilers", noClaim, slog.Default())
		require.NoError(t, q.Enqueue(context.Background(), event(4)))

		failing := &recorder{fails: 1}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Consume(ctx, "consumer-0", failing.handle) }()
		assert.Eventually(t, func() bool {
			p, err := client.XPending(context.Background(), "bids", "reconcilers").Result()
			return err == nil && p.Count == 1
		}, 3*time.Second, 10*time.Millisecond)
		cancel()
		require.NoError(t, <-done)

		rec := &recorder{}
		ctx, cancel = context.WithCancel(context.Background())
		go func() { done <- q.Consume(ctx, "consumer-0", rec.handle) }()
		assert.Eventually(t, func() bool { return rec.count() == 1 }, 3*time.Second, 10*time.Millisecond)
		cancel()
		require.NoError(t, <-done)
	})

	t.Run("failed delivery is claimed again while running", func(t *testing.T) {
		_, client := redistest.New(t)
		q := queue.NewStreamQueue(client, "bids", "reconcilers", fastRedelivery, slog.Default())
		require.NoError(t, q.Enqueue(context.Background(), event(5)))

		rec := &recorder{fails: 1}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Consume(ctx, "consumer-0", rec.handle) }()

		assert.Eventually(t, func() bool { return rec.count() == 1 }, 3*time.Second, 10*time.Millisecond)
		requireNothingPending(t, client)
		cancel()
		require.NoError(t, <-done)
		assert.Equal(t, 2, rec.attempts())
	})

	t.Run("entries of a vanished consumer are claimed", func(t *testing.T) {
		_, client := redistest.New(t)
		q := queue.NewStreamQueue(client, "bids", "reconcilers", fastRedelivery, slog.Default())
		require.NoError(t, q.EnsureGroup(context.Background()))
		ev := event(6)
		require.NoError(t, q.Enqueue(context.Background(), ev))

		read, err := client.XReadGroup(context.Background(), &redis.XReadGroupArgs{
			Group:    "reconcilers",
			Consumer: "consumer-gone",
			Streams:  []string{"bids", ">"},
			Count:    1,
			Block:    -1,
		}).Result()
		require.NoError(t, err)
		require.Len(t, read[0].Messages, 1)

		rec := &recorder{}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Consume(ctx, "consumer-1", rec.handle) }()

		assert.Eventually(t, func() bool { return rec.count() == 1 }, 3*time.Second, 10*time.Millisecond)
		requireNothingPending(t, client)
		cancel()
		require.NoError(t, <-done)
		assert.Equal(t, ev.RequestID, rec.seen[0].RequestID)
	})

	t.Run("failing delivery is dropped after max deliveries", func(t *testing.T) {
		_, client := redistest.New(t)
		q := queue.NewStreamQueue(client, "bids", "reconcilers", fastRedelivery, slog.Default())
		require.NoError(t, q.Enqueue(context.Background(), event(7)))

		rec := alwaysFailing()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- q.Consume(ctx, "consumer-0", rec.handle) }()

		assert.Eventually(t, func() bool { return rec.attempts() == fastRedelivery.MaxDeliveries }, 3*time.Second, 10*time.Millisecond)
		assert.Eventually(t, func() bool {
			p, err := client.XPending(context.Background(), "bids", "reconcilers").Result()
			return err == nil && p.Count == 0
		}, time.Second, 10*time.Millisecond)
		assert.Never(t, func() bool { return rec.attempts() > fastRedelivery.MaxDeliveries }, 200*time.Millisecond, 20*time.Millisecond)
		cancel()
		require.NoError(t, <-done)
	})
}

func requireNothingPending(t *testing.T, client redis.UniversalClient) {
	t.Helper()
	require.Eventually(t, func() bool {
		pending, err := client.XPending(context.Background(), "bids", "reconcilers").Result()
		return err == nil && pending.Count == 0
	}, time.Second, 10*time.Millisecond)
}
