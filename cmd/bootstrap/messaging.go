package bootstrap

import (
	"context"
	"log/slog"

	"auction-engine/internal/infra/events"
	"auction-engine/internal/infra/queue"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewBidQueue,
		NewEventPublisher,
	),
)

// NewBidQueue picks the reconciliation transport. The in-memory queue loses
// undelivered bids on restart; Redis Streams keeps them pending.
func NewBidQueue(lc fx.Lifecycle, cfg config.Config, client redis.UniversalClient, logger *slog.Logger) (shared.BidQueue, shared.BidConsumer, error) {
	redelivery := queue.Redelivery{
		MaxDeliveries: cfg.Reconcile.MaxDeliveries,
		Delay:         cfg.Reconcile.RedeliveryDelay,
		ClaimIdle:     cfg.Reconcile.ClaimIdle,
	}
	switch cfg.Reconcile.Queue {
	case config.QueueMemory:
		q := queue.NewMemoryQueue(cfg.Reconcile.BufferSize, redelivery, logger)
		return q, q, nil
	case config.QueueRedis:
		q := queue.NewStreamQueue(client, cfg.Reconcile.Stream, cfg.Reconcile.Group, redelivery, logger)
		lc.Append(fx.Hook{
			OnStart: q.EnsureGroup,
		})
		return q, q, nil
	default:
		return nil, nil, errs.Newf("unknown RECONCILE_QUEUE %q", cfg.Reconcile.Queue)
	}
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if !cfg.Kafka.Enabled {
		return events.NewLogPublisher(logger)
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
