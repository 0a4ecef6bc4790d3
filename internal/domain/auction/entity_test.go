//go:build unit

package auction_test

import (
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	leader := int64(5)

	tests := []struct {
		name   string
		mutate func(*builder.AuctionBuilder)
		errIs  error
	}{
		{name: "fresh auction"},
		{name: "led auction", mutate: func(b *builder.AuctionBuilder) { b.LedBy(leader, 900, 2) }},
		{
			name:   "unknown status",
			mutate: func(b *builder.AuctionBuilder) { b.Status = "PAUSED" },
			errIs:  auction.ErrInvalidStatus,
		},
		{
			name:   "zero start price",
			mutate: func(b *builder.AuctionBuilder) { b.StartPrice = decimal.Zero; b.CurrentPrice = decimal.Zero },
			errIs:  auction.ErrInvalidStartPrice,
		},
		{
			name:   "current below start",
			mutate: func(b *builder.AuctionBuilder) { b.CurrentPrice = decimal.NewFromInt(100) },
			errIs:  auction.ErrInvariantViolated,
		},
		{
			name:   "bids without leader",
			mutate: func(b *builder.AuctionBuilder) { b.BidCount = 1 },
			errIs:  auction.ErrInvariantViolated,
		},
		{
			name:   "leader without bids",
			mutate: func(b *builder.AuctionBuilder) { b.CurrentBidderID = &leader },
			errIs:  auction.ErrInvariantViolated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewAuctionBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			a, err := auction.Reconstruct(auction.Fields{
				ID:              b.ID,
				SellerID:        b.SellerID,
				StartPrice:      b.StartPrice,
				CurrentPrice:    b.CurrentPrice,
				CurrentBidderID: b.CurrentBidderID,
				BidCount:        b.BidCount,
				EndAt:           b.EndAt,
				Status:          b.Status,
				CreatedAt:       b.CreatedAt,
			})
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.BidCount, a.BidCount())
		})
	}
}

func TestCancelRefundable(t *testing.T) {
	a := builder.NewAuctionBuilder().BuildDomain()
	window := 5 * time.Minute

	assert.True(t, a.CancelRefundable(a.CreatedAt().Add(window), window))
	assert.False(t, a.CancelRefundable(a.CreatedAt().Add(window+time.Second), window))
}

func TestStatus(t *testing.T) {
	s, err := auction.NewStatus("DEADLINE")
	require.NoError(t, err)
	assert.True(t, s.IsLive())
	assert.False(t, s.AcceptsBids())
	assert.False(t, s.IsCancellable())

	_, err = auction.NewStatus("running")
	assert.ErrorIs(t, err, auction.ErrInvalidStatus)

	assert.True(t, auction.StatusReady.IsCancellable())
	assert.False(t, auction.StatusReady.IsLive())
}
