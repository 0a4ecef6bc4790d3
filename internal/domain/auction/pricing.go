package auction

import (
	"time"

	"auction-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrAuctionNotActive = errs.New("auction is not accepting bids")
	ErrLowBid           = errs.New("bid amount is below the minimum increment")
	ErrContinuousBid    = errs.New("current leader cannot bid again")
	ErrInvalidAmount    = errs.New("bid amount must be a positive whole number")
)

// IncrementPolicy decides the lowest acceptable next bid for a given price.
type IncrementPolicy struct {
	Rate decimal.Decimal
	Unit decimal.Decimal
}

func DefaultIncrementPolicy() IncrementPolicy {
	return IncrementPolicy{
		Rate: decimal.RequireFromString("0.1"),
		Unit: decimal.NewFromInt(10),
	}
}

// MinimumNextBid is ceil(current * (1 + rate)) rounded up to a multiple of
// Unit. A non-positive current price accepts any positive whole amount.
func (p IncrementPolicy) MinimumNextBid(current decimal.Decimal) decimal.Decimal {
	if !current.IsPositive() {
		return decimal.NewFromInt(1)
	}
	minimum := current.Mul(decimal.NewFromInt(1).Add(p.Rate)).Ceil()
	if p.Unit.IsPositive() {
		minimum = minimum.Div(p.Unit).Ceil().Mul(p.Unit)
	}
	return minimum
}

// BidContext is the state a bid is validated against, read under the auction mutex.
type BidContext struct {
	Status          Status
	CurrentPrice    decimal.Decimal
	CurrentBidderID *int64
	EndAt           time.Time
}

func (p IncrementPolicy) Validate(c BidContext, bidderID int64, amount decimal.Decimal, now time.Time) error {
	if !c.Status.AcceptsBids() || (!c.EndAt.IsZero() && now.After(c.EndAt)) {
		return ErrAuctionNotActive
	}
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(0)) {
		return ErrInvalidAmount
	}
	if minimum := p.MinimumNextBid(c.CurrentPrice); amount.LessThan(minimum) {
		return errs.Wrapf(ErrLowBid, "minimum next bid is %s", minimum.String())
	}
	if c.CurrentBidderID != nil && *c.CurrentBidderID == bidderID {
		return ErrContinuousBid
	}
	return nil
}
