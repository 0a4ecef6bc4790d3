package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	payloadField = "payload"
	readBatch    = 16
	readBlock    = 2 * time.Second
)

// StreamQueue carries BidAccepted deltas over a Redis stream with a consumer
// group. Entries stay pending until the handler succeeds. A starting consumer
// walks its own pending entries first, and every consumer periodically claims
// entries of the group that have been idle for ClaimIdle, including those of
// consumers that no longer run. An entry delivered MaxDeliveries times is
// acknowledged and dropped with an error log.
type StreamQueue struct {
	client redis.UniversalClient
	stream string
	group  string
	policy Redelivery
	logger *slog.Logger
}

func NewStreamQueue(client redis.UniversalClient, stream, group string, policy Redelivery, logger *slog.Logger) *StreamQueue {
	return &StreamQueue{
		client: client,
		stream: stream,
		group:  group,
		policy: policy.withDefaults(),
		logger: logger,
	}
}

func (q *StreamQueue) Enqueue(ctx context.Context, ev shared.BidAccepted) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode bid event")
	}
	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{payloadField: payload},
	}).Err()
	if err != nil {
		return errs.Wrap(err, "failed to append bid event")
	}
	return nil
}

// EnsureGroup creates the stream and consumer group when missing.
func (q *StreamQueue) EnsureGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return errs.Wrap(err, "failed to create consumer group")
	}
	return nil
}

func (q *StreamQueue) Consume(ctx context.Context, consumer string, handle shared.BidHandler) error {
	if err := q.EnsureGroup(ctx); err != nil {
		return err
	}

	// An explicit id walks this consumer's pending entries once, ">" reads new ones.
	cursor := "0"
	lastClaim := time.Now()
	for ctx.Err() == nil {
		var block time.Duration = -1
		if cursor == ">" {
			if time.Since(lastClaim) >= q.policy.ClaimIdle {
				q.claim(ctx, consumer, handle)
				lastClaim = time.Now()
			}
			block = min(readBlock, q.policy.ClaimIdle)
		}
		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.group,
			Consumer: consumer,
			Streams:  []string{q.stream, cursor},
			Count:    readBatch,
			Block:    block,
		}).Result()
		if err != nil {
			if errs.Is(err, redis.Nil) {
				cursor = ">"
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			q.logger.Warn("stream read failed", "consumer", consumer, "error", err.Error())
			sleep(ctx, time.Second)
			continue
		}

		lastID := ""
		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID
				q.deliver(ctx, consumer, msg, handle)
			}
		}
		if cursor != ">" {
			cursor = lastID
			if lastID == "" {
				cursor = ">"
			}
		}
	}
	return nil
}

// claim takes over every entry of the group idle for at least ClaimIdle.
func (q *StreamQueue) claim(ctx context.Context, consumer string, handle shared.BidHandler) {
	start := "0-0"
	for ctx.Err() == nil {
		msgs, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   q.stream,
			Group:    q.group,
			MinIdle:  q.policy.ClaimIdle,
			Start:    start,
			Count:    readBatch,
			Consumer: consumer,
		}).Result()
		if err != nil {
			if ctx.Err() == nil {
				q.logger.Warn("stream claim failed", "consumer", consumer, "error", err.Error())
			}
			return
		}
		for _, msg := range msgs {
			q.deliver(ctx, consumer, msg, handle)
		}
		if len(msgs) == 0 || next == "" || next == "0-0" {
			return
		}
		start = next
	}
}

func (q *StreamQueue) deliver(ctx context.Context, consumer string, msg redis.XMessage, handle shared.BidHandler) {
	ev, err := decode(msg)
	if err != nil {
		q.logger.Error("dropping undecodable bid event",
			"message_id", msg.ID,
			"error", err.Error())
		q.ack(ctx, msg.ID)
		return
	}
	if err := handle(ctx, ev); err != nil {
		deliveries := q.deliveries(ctx, msg.ID)
		if deliveries >= int64(q.policy.MaxDeliveries) {
			q.logger.Error("bid delivery abandoned",
				"consumer", consumer,
				"message_id", msg.ID,
				"request_id", ev.RequestID.String(),
				"deliveries", deliveries,
				"error", err.Error())
			q.ack(ctx, msg.ID)
			return
		}
		q.logger.Warn("bid delivery left pending",
			"consumer", consumer,
			"message_id", msg.ID,
			"request_id", ev.RequestID.String(),
			"deliveries", deliveries,
			"error", err.Error())
		return
	}
	q.ack(ctx, msg.ID)
}

// deliveries reads the delivery counter of a pending entry, 0 when unknown.
func (q *StreamQueue) deliveries(ctx context.Context, id string) int64 {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.stream,
		Group:  q.group,
		Start:  id,
		End:    id,
		Count:  1,
	}).Result()
	if err != nil || len(pending) == 0 {
		return 0
	}
	return pending[0].RetryCount
}

func (q *StreamQueue) ack(ctx context.Context, id string) {
	if err := q.client.XAck(ctx, q.stream, q.group, id).Err(); err != nil {
		q.logger.Warn("stream ack failed", "message_id", id, "error", err.Error())
	}
}

func decode(msg redis.XMessage) (shared.BidAccepted, error) {
	var ev shared.BidAccepted
	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		return ev, errs.Newf("message %s has no payload", msg.ID)
	}
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return ev, errs.Wrap(err, "invalid bid event payload")
	}
	return ev, nil
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
