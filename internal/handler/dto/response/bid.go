package response

import (
	"time"

	"auction-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type BidResponse struct {
	RequestID        uuid.UUID `json:"requestId"`
	AuctionID        int64     `json:"auctionId"`
	BidderID         int64     `json:"bidderId"`
	Amount           string    `json:"amount"`
	PreviousBidderID *int64    `json:"previousBidderId,omitempty"`
	BidCount         int       `json:"bidCount"`
	AcceptedAt       time.Time `json:"acceptedAt"`
	Extended         bool      `json:"extended"`
}

// DuplicateBidResponse answers a retried request id that was already accepted.
type DuplicateBidResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Duplicate bool      `json:"duplicate"`
}

func FromBidOutcome(o *commands.BidOutcome) *BidResponse {
	return &BidResponse{
		RequestID:        o.RequestID,
		AuctionID:        o.AuctionID,
		BidderID:         o.BidderID,
		Amount:           o.Amount.String(),
		PreviousBidderID: o.PreviousBidderID,
		BidCount:         o.BidCount,
		AcceptedAt:       o.AcceptedAt,
		Extended:         o.Extended,
	}
}
