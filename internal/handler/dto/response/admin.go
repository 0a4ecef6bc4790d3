package response

import (
	"time"

	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RolledBackAuction struct {
	AuctionID        int64  `json:"auctionId"`
	ReleasedAmount   string `json:"releasedAmount"`
	RestoredPrice    string `json:"restoredPrice"`
	RestoredLeaderID *int64 `json:"restoredLeaderId"`
	RestoredBidCount int    `json:"restoredBidCount"`
}

type RollbackResponse struct {
	UserID   int64               `json:"userId"`
	Auctions []RolledBackAuction `json:"auctions"`
}

func FromRollbackResult(r *commands.RollbackResult) *RollbackResponse {
	out := &RollbackResponse{UserID: r.UserID, Auctions: make([]RolledBackAuction, 0, len(r.Plans))}
	for _, p := range r.Plans {
		out.Auctions = append(out.Auctions, RolledBackAuction{
			AuctionID:        p.AuctionID,
			ReleasedAmount:   p.ReleasedAmount.String(),
			RestoredPrice:    p.RestoredPrice.String(),
			RestoredLeaderID: p.RestoredLeaderID,
			RestoredBidCount: p.RestoredBidCount,
		})
	}
	return out
}

type TransitionResponse struct {
	AuctionIDs []int64 `json:"auctionIds"`
	Count      int     `json:"count"`
}

func FromTransitioned(ids []int64) *TransitionResponse {
	if ids == nil {
		ids = []int64{}
	}
	return &TransitionResponse{AuctionIDs: ids, Count: len(ids)}
}

type FailedBidRequestResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	AuctionID int64     `json:"auctionId"`
	BidderID  int64     `json:"bidderId"`
	Amount    string    `json:"amount"`
	Attempts  int       `json:"attempts"`
	LastError *string   `json:"lastError,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBidRequestRecords(recs []*shared.BidRequestRecord) []*FailedBidRequestResponse {
	out := make([]*FailedBidRequestResponse, len(recs))
	for i, r := range recs {
		out[i] = &FailedBidRequestResponse{
			RequestID: r.Event.RequestID,
			AuctionID: r.Event.AuctionID,
			BidderID:  r.Event.BidderID,
			Amount:    r.Event.Amount.String(),
			Attempts:  r.Attempts,
			LastError: r.LastError,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return out
}
