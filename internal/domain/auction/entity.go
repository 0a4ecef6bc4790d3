package auction

import (
	"time"

	"auction-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errs.New("invalid auction status")
	ErrInvalidStartPrice = errs.New("start price must be positive")
	ErrInvariantViolated = errs.New("auction invariant violated")
)

type Auction struct {
	id              int64
	itemID          int64
	sellerID        int64
	categoryID      *int64
	startPrice      decimal.Decimal
	currentPrice    decimal.Decimal
	currentBidderID *int64
	bidCount        int
	deposit         decimal.Decimal
	startAt         *time.Time
	endAt           time.Time
	extended        bool
	imminentMinutes int
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

type Fields struct {
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
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct rebuilds an auction loaded from storage and rejects rows that
// break the price or leader invariants.
func Reconstruct(f Fields) (*Auction, error) {
	if !f.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !f.StartPrice.IsPositive() {
		return nil, ErrInvalidStartPrice
	}
	if f.CurrentPrice.LessThan(f.StartPrice) {
		return nil, errs.Wrapf(ErrInvariantViolated, "auction %d current price below start price", f.ID)
	}
	if (f.BidCount == 0) != (f.CurrentBidderID == nil) {
		return nil, errs.Wrapf(ErrInvariantViolated, "auction %d bid count and leader disagree", f.ID)
	}
	return &Auction{
		id:              f.ID,
		itemID:          f.ItemID,
		sellerID:        f.SellerID,
		categoryID:      f.CategoryID,
		startPrice:      f.StartPrice,
		currentPrice:    f.CurrentPrice,
		currentBidderID: f.CurrentBidderID,
		bidCount:        f.BidCount,
		deposit:         f.Deposit,
		startAt:         f.StartAt,
		endAt:           f.EndAt,
		extended:        f.Extended,
		imminentMinutes: f.ImminentMinutes,
		status:          f.Status,
		createdAt:       f.CreatedAt,
		updatedAt:       f.UpdatedAt,
	}, nil
}

func (a *Auction) ID() int64                     { return a.id }
func (a *Auction) ItemID() int64                 { return a.itemID }
func (a *Auction) SellerID() int64               { return a.sellerID }
func (a *Auction) CategoryID() *int64            { return a.categoryID }
func (a *Auction) StartPrice() decimal.Decimal   { return a.startPrice }
func (a *Auction) CurrentPrice() decimal.Decimal { return a.currentPrice }
func (a *Auction) CurrentBidderID() *int64       { return a.currentBidderID }
func (a *Auction) BidCount() int                 { return a.bidCount }
func (a *Auction) Deposit() decimal.Decimal      { return a.deposit }
func (a *Auction) StartAt() *time.Time           { return a.startAt }
func (a *Auction) EndAt() time.Time              { return a.endAt }
func (a *Auction) IsExtended() bool              { return a.extended }
func (a *Auction) ImminentMinutes() int          { return a.imminentMinutes }
func (a *Auction) Status() Status                { return a.status }
func (a *Auction) CreatedAt() time.Time          { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time          { return a.updatedAt }

func (a *Auction) IsLedBy(userID int64) bool {
	return a.currentBidderID != nil && *a.currentBidderID == userID
}

// Restore applies a rollback plan computed for this auction.
func (a *Auction) Restore(plan RollbackPlan) {
	a.currentPrice = plan.RestoredPrice
	a.currentBidderID = plan.RestoredLeaderID
	a.bidCount = plan.RestoredBidCount
}

// CancelRefundable reports whether the seller's deposit is returned when the
// auction is cancelled at now.
func (a *Auction) CancelRefundable(now time.Time, window time.Duration) bool {
	return !now.After(a.createdAt.Add(window))
}
