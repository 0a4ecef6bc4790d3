package queue

import (
	"context"
	"log/slog"

	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"
)

var ErrQueueFull = errs.New("bid queue is full")

type delivery struct {
	ev      shared.BidAccepted
	attempt int
}

// MemoryQueue is a single-process queue backed by a buffered channel.
// A failed delivery is requeued after the redelivery delay until it has been
// handed out MaxDeliveries times, then it is dropped with an error log.
type MemoryQueue struct {
	ch     chan delivery
	policy Redelivery
	logger *slog.Logger
}

func NewMemoryQueue(size int, policy Redelivery, logger *slog.Logger) *MemoryQueue {
	if size <= 0 {
		size = 1
	}
	return &MemoryQueue{
		ch:     make(chan delivery, size),
		policy: policy.withDefaults(),
		logger: logger,
	}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, ev shared.BidAccepted) error {
	return q.push(ctx, delivery{ev: ev, attempt: 1})
}

func (q *MemoryQueue) push(ctx context.Context, d delivery) error {
	select {
	case q.ch <- d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *MemoryQueue) Consume(ctx context.Context, consumer string, handle shared.BidHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-q.ch:
			err := handle(ctx, d.ev)
			if err == nil {
				continue
			}
			if d.attempt >= q.policy.MaxDeliveries {
				q.logger.Error("bid delivery abandoned",
					"consumer", consumer,
					"request_id", d.ev.RequestID.String(),
					"deliveries", d.attempt,
					"error", err.Error())
				continue
			}
			q.logger.Warn("bid delivery failed, requeueing",
				"consumer", consumer,
				"request_id", d.ev.RequestID.String(),
				"deliveries", d.attempt,
				"error", err.Error())
			sleep(ctx, q.policy.Delay)
			if ctx.Err() != nil {
				return nil
			}
			if err := q.push(ctx, delivery{ev: d.ev, attempt: d.attempt + 1}); err != nil {
				q.logger.Error("bid delivery dropped",
					"request_id", d.ev.RequestID.String(),
					"error", err.Error())
			}
		}
	}
}

// Len reports the number of buffered deliveries.
func (q *MemoryQueue) Len() int {
	return len(q.ch)
}
