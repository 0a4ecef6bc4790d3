package response

import (
	"time"

	"auction-engine/internal/usecase/shared"
)

type SnapshotResponse struct {
	AuctionID       int64     `json:"auctionId"`
	CurrentPrice    string    `json:"currentPrice"`
	CurrentBidderID *int64    `json:"currentBidderId"`
	BidCount        int       `json:"bidCount"`
	EndAt           time.Time `json:"endAt"`
	ImminentMinutes int       `json:"imminentMinutes"`
	Extended        bool      `json:"isExtended"`
	Status          string    `json:"status"`
}

func FromSnapshot(s *shared.AuctionSnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		AuctionID:       s.AuctionID,
		CurrentPrice:    s.CurrentPrice.String(),
		CurrentBidderID: s.CurrentBidderID,
		BidCount:        s.BidCount,
		EndAt:           s.EndAt,
		ImminentMinutes: s.ImminentMinutes,
		Extended:        s.Extended,
		Status:          s.Status.String(),
	}
}

func FromSnapshots(in []*shared.AuctionSnapshot) []*SnapshotResponse {
	out := make([]*SnapshotResponse, len(in))
	for i, s := range in {
		out[i] = FromSnapshot(s)
	}
	return out
}
