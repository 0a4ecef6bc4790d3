package shared

import (
	"time"

	"auction-engine/internal/domain/auction"

	"github.com/shopspring/decimal"
)

// SnapshotGrace keeps fast-path keys alive past the auction end for settlement reads.
const SnapshotGrace = 10 * time.Minute

const minSnapshotTTL = time.Minute

// AuctionSnapshot is the fast-path view of one auction.
type AuctionSnapshot struct {
	AuctionID       int64           `json:"auctionId"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	CurrentBidderID *int64          `json:"currentBidderId"`
	BidCount        int             `json:"bidCount"`
	EndAt           time.Time       `json:"endAt"`
	ImminentMinutes int             `json:"imminentMinutes"`
	Extended        bool            `json:"isExtended"`
	Status          auction.Status  `json:"status"`
}

func SnapshotFromAuction(a *auction.Auction) AuctionSnapshot {
	return AuctionSnapshot{
		AuctionID:       a.ID(),
		CurrentPrice:    a.CurrentPrice(),
		CurrentBidderID: a.CurrentBidderID(),
		BidCount:        a.BidCount(),
		EndAt:           a.EndAt(),
		ImminentMinutes: a.ImminentMinutes(),
		Extended:        a.IsExtended(),
		Status:          a.Status(),
	}
}

func (s AuctionSnapshot) BidContext() auction.BidContext {
	return auction.BidContext{
		Status:          s.Status,
		CurrentPrice:    s.CurrentPrice,
		CurrentBidderID: s.CurrentBidderID,
		EndAt:           s.EndAt,
	}
}

// SnapshotTTL is endAt plus the grace period, never less than one minute.
func SnapshotTTL(endAt, now time.Time) time.Duration {
	ttl := endAt.Add(SnapshotGrace).Sub(now)
	if ttl < minSnapshotTTL {
		return minSnapshotTTL
	}
	return ttl
}

// RawSnapshot holds the fast-path values as stored; nil means the key is absent.
type RawSnapshot struct {
	CurrentPrice    *string
	CurrentBidder   *string
	BidCount        *string
	EndTime         *string
	ImminentMinutes *string
	Extended        *string
	Status          *string
}

func (r RawSnapshot) Complete() bool {
	return r.CurrentPrice != nil && r.CurrentBidder != nil && r.BidCount != nil &&
		r.EndTime != nil && r.ImminentMinutes != nil && r.Extended != nil && r.Status != nil
}
