package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidAccepted is the committed fast-path delta handed to reconciliation.
type BidAccepted struct {
	RequestID        uuid.UUID       `json:"requestId"`
	AuctionID        int64           `json:"auctionId"`
	BidderID         int64           `json:"bidderId"`
	PreviousBidderID *int64          `json:"previousBidderId,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PreviousAmount   decimal.Decimal `json:"previousAmount"`
	AcceptedAt       time.Time       `json:"acceptedAt"`
}

func (e BidAccepted) HasPreviousBidder() bool {
	return e.PreviousBidderID != nil && *e.PreviousBidderID != e.BidderID && e.PreviousAmount.IsPositive()
}

type EventType string

const (
	EventBidSucceeded         EventType = "BID_SUCCEEDED"
	EventBidRolledBack        EventType = "BID_ROLLED_BACK"
	EventAuctionRunning       EventType = "AUCTION_RUNNING"
	EventAuctionExtended      EventType = "AUCTION_EXTENDED"
	EventAuctionDeadline      EventType = "AUCTION_DEADLINE"
	EventAuctionEnded         EventType = "AUCTION_ENDED"
	EventAuctionCanceled      EventType = "AUCTION_CANCELED"
	EventAuctionSnapshot      EventType = "AUCTION_SNAPSHOT"
	EventReconciliationFailed EventType = "RECONCILIATION_FAILED"
)

type Event struct {
	Type       EventType `json:"type"`
	AuctionID  int64     `json:"auctionId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// EventPublisher fans lifecycle events out to UI and notification consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}
