//go:build unit

package lock_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/infra/lock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedsyncLocker(t *testing.T) {
	ctx := context.Background()
	key := shared.AuctionLockKey(1)

	t.Run("second holder waits out and fails", func(t *testing.T) {
		_, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)

		lease, err := locker.Acquire(ctx, key, 100*time.Millisecond, 2*time.Second)
		require.NoError(t, err)

		_, err = locker.Acquire(ctx, key, 100*time.Millisecond, 2*time.Second)
		assert.True(t, errs.Is(err, errs.ErrLockContention))

		require.NoError(t, lease.Release(ctx))

		lease, err = locker.Acquire(ctx, key, 100*time.Millisecond, 2*time.Second)
		require.NoError(t, err)
		require.NoError(t, lease.Release(ctx))
	})

	t.Run("expired lease can be taken over", func(t *testing.T) {
		srv, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)

		stale, err := locker.Acquire(ctx, key, 100*time.Millisecond, time.Second)
		require.NoError(t, err)
		srv.FastForward(2 * time.Second)

		lease, err := locker.Acquire(ctx, key, 100*time.Millisecond, time.Second)
		require.NoError(t, err)

		assert.Error(t, stale.Release(ctx))
		require.NoError(t, lease.Release(ctx))
	})

	t.Run("extend keeps the lock past its first lease", func(t *testing.T) {
		srv, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)

		lease, err := locker.Acquire(ctx, key, 100*time.Millisecond, time.Second)
		require.NoError(t, err)
		srv.FastForward(900 * time.Millisecond)
		require.NoError(t, lease.Extend(ctx))
		srv.FastForward(900 * time.Millisecond)

		assert.True(t, srv.Exists(key))
		require.NoError(t, lease.Release(ctx))
	})

	t.Run("extend after expiry reports contention", func(t *testing.T) {
		srv, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)

		lease, err := locker.Acquire(ctx, key, 100*time.Millisecond, time.Second)
		require.NoError(t, err)
		srv.FastForward(2 * time.Second)

		err = lease.Extend(ctx)
		assert.True(t, errs.Is(err, errs.ErrLockContention))
	})

	t.Run("distinct keys do not contend", func(t *testing.T) {
		_, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)

		a, err := locker.Acquire(ctx, shared.UserLockKey(1), 50*time.Millisecond, time.Second)
		require.NoError(t, err)
		b, err := locker.Acquire(ctx, shared.UserLockKey(2), 50*time.Millisecond, time.Second)
		require.NoError(t, err)

		require.NoError(t, a.Release(ctx))
		require.NoError(t, b.Release(ctx))
	})

	t.Run("cancelled caller gets its context error", func(t *testing.T) {
		_, client := redistest.New(t)
		locker := lock.NewRedsyncLocker(client)
		held, err := locker.Acquire(ctx, key, 50*time.Millisecond, 2*time.Second)
		require.NoError(t, err)
		defer func() { _ = held.Release(ctx) }()

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = locker.Acquire(cctx, key, time.Second, 2*time.Second)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
