package auction

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bid struct {
	ID        int64
	AuctionID int64
	BidderID  int64
	Price     decimal.Decimal
	RequestID uuid.UUID
	CreatedAt time.Time
}

// SortByCreation orders bids by acceptance time, ties broken by id.
func SortByCreation(bids []Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].ID < bids[j].ID
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
}
