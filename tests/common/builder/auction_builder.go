//go:build unit || e2e

package builder

import (
	"time"

	"auction-engine/internal/domain/auction"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var BaseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type AuctionBuilder struct {
	ID              int64
	ItemID          int64
	SellerID        int64
	CategoryID      *int64
	StartPrice      decimal.Decimal
	CurrentPrice    decimal.Decimal
	CurrentBidderID *int64
	BidCount        int
	Deposit         decimal.Decimal
	StartAt         *time.Time
	EndAt           time.Time
	Extended        bool
	ImminentMinutes int
	Status          auction.Status
	CreatedAt       time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	start := BaseTime.Add(-time.Hour)
	return &AuctionBuilder{
		ID:              1,
		ItemID:          100,
		SellerID:        900,
		StartPrice:      decimal.NewFromInt(500),
		CurrentPrice:    decimal.NewFromInt(500),
		Deposit:         decimal.Zero,
		StartAt:         &start,
		EndAt:           BaseTime.Add(time.Hour),
		ImminentMinutes: 3,
		Status:          auction.StatusRunning,
		CreatedAt:       BaseTime.Add(-2 * time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

// LedBy sets the leader, price and count in one step.
func (b *AuctionBuilder) LedBy(bidderID int64, price int64, bidCount int) *AuctionBuilder {
	b.CurrentBidderID = &bidderID
	b.CurrentPrice = decimal.NewFromInt(price)
	b.BidCount = bidCount
	return b
}

// Build methods
func (b *AuctionBuilder) BuildDomain() *auction.Auction {
	a, err := auction.Reconstruct(auction.Fields{
		ID:              b.ID,
		ItemID:          b.ItemID,
		SellerID:        b.SellerID,
		CategoryID:      b.CategoryID,
		StartPrice:      b.StartPrice,
		CurrentPrice:    b.CurrentPrice,
		CurrentBidderID: b.CurrentBidderID,
		BidCount:        b.BidCount,
		Deposit:         b.Deposit,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		Extended:        b.Extended,
		ImminentMinutes: b.ImminentMinutes,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	})
	if err != nil {
		panic(err)
	}
	return a
}

func (b *AuctionBuilder) BuildInfra() sqlc.Auctions {
	return sqlc.Auctions{
		ID:              b.ID,
		ItemID:          b.ItemID,
		SellerID:        b.SellerID,
		CategoryID:      pgconv.Int64PtrToPgtype(b.CategoryID),
		StartPrice:      pgconv.DecimalToNumeric(b.StartPrice),
		CurrentPrice:    pgconv.DecimalToNumeric(b.CurrentPrice),
		CurrentBidderID: pgconv.Int64PtrToPgtype(b.CurrentBidderID),
		BidCount:        int32(b.BidCount), // #nosec G115 -- test values
		Deposit:         pgconv.DecimalToNumeric(b.Deposit),
		StartAt:         pgconv.TimePtrToPgtype(b.StartAt),
		EndAt:           pgconv.TimeToPgtype(b.EndAt),
		IsExtended:      b.Extended,
		ImminentMinutes: int32(b.ImminentMinutes), // #nosec G115 -- test values
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AuctionBuilder) BuildSnapshot() *shared.AuctionSnapshot {
	s := shared.SnapshotFromAuction(b.BuildDomain())
	return &s
}

// Bids builds a bid history in creation order, one second apart.
func Bids(auctionID int64, entries ...BidEntry) []auction.Bid {
	out := make([]auction.Bid, 0, len(entries))
	for i, e := range entries {
		out = append(out, auction.Bid{
			ID:        int64(i + 1),
			AuctionID: auctionID,
			BidderID:  e.BidderID,
			Price:     decimal.NewFromInt(e.Price),
			RequestID: uuid.New(),
			CreatedAt: BaseTime.Add(time.Duration(i) * time.Second),
		})
	}
	return out
}

type BidEntry struct {
	BidderID int64
	Price    int64
}
