//go:build unit

package auction_test

import (
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinimumNextBid(t *testing.T) {
	policy := auction.DefaultIncrementPolicy()

	tests := []struct {
		name    string
		current int64
		want    int64
	}{
		{name: "exact multiple", current: 1000, want: 1100},
		{name: "rounds up to unit", current: 1234, want: 1360},
		{name: "fraction ceiled before unit", current: 501, want: 560},
		{name: "no price yet", current: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.MinimumNextBid(decimal.NewFromInt(tt.current))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestValidate(t *testing.T) {
	policy := auction.DefaultIncrementPolicy()
	leader := int64(7)
	now := builder.BaseTime

	base := func() auction.BidContext {
		return auction.BidContext{
			Status:          auction.StatusRunning,
			CurrentPrice:    decimal.NewFromInt(1000),
			CurrentBidderID: &leader,
			EndAt:           now.Add(time.Minute),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*auction.BidContext)
		bidder  int64
		amount  string
		now     time.Time
		wantErr error
	}{
		{name: "accepted at minimum", bidder: 8, amount: "1100", now: now},
		{name: "below minimum", bidder: 8, amount: "1090", now: now, wantErr: auction.ErrLowBid},
		{name: "leader bids again", bidder: 7, amount: "2000", now: now, wantErr: auction.ErrContinuousBid},
		{name: "fractional amount", bidder: 8, amount: "1100.5", now: now, wantErr: auction.ErrInvalidAmount},
		{name: "negative amount", bidder: 8, amount: "-5", now: now, wantErr: auction.ErrInvalidAmount},
		{
			name:    "not running",
			mutate:  func(c *auction.BidContext) { c.Status = auction.StatusDeadline },
			bidder:  8,
			amount:  "1100",
			now:     now,
			wantErr: auction.ErrAuctionNotActive,
		},
		{name: "after end", bidder: 8, amount: "1100", now: now.Add(2 * time.Minute), wantErr: auction.ErrAuctionNotActive},
		{
			name:   "first bid at start price increment",
			mutate: func(c *auction.BidContext) { c.CurrentBidderID = nil; c.CurrentPrice = decimal.NewFromInt(500) },
			bidder: 7,
			amount: "550",
			now:    now,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			err := policy.Validate(c, tt.bidder, decimal.RequireFromString(tt.amount), tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShouldExtend(t *testing.T) {
	end := builder.BaseTime

	assert.True(t, auction.ShouldExtend(end, end.Add(-3*time.Minute), 3))
	assert.True(t, auction.ShouldExtend(end, end, 3))
	assert.False(t, auction.ShouldExtend(end, end.Add(-3*time.Minute-time.Second), 3))
	assert.False(t, auction.ShouldExtend(end, end.Add(time.Second), 3))
	assert.False(t, auction.ShouldExtend(end, end.Add(-time.Minute), 0))
	assert.Equal(t, end.Add(3*time.Minute), auction.ExtendedEnd(end, 3*time.Minute))
}
