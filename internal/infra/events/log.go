package events

import (
	"context"
	"log/slog"

	"auction-engine/internal/usecase/shared"
)

// LogPublisher records events in the application log. Used when Kafka is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...shared.Event) error {
	for _, ev := range events {
		p.logger.InfoContext(ctx, "auction event",
			"type", string(ev.Type),
			"auction_id", ev.AuctionID,
			"occurred_at", ev.OccurredAt,
			"payload", ev.Payload)
	}
	return nil
}
