//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/ptr"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"
	sharedmock "auction-engine/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseSnapshot(t *testing.T) {
	end := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  shared.RawSnapshot
		want shared.AuctionSnapshot
	}{
		{
			name: "epoch millis and leader",
			raw: shared.RawSnapshot{
				CurrentPrice:    ptr.Of("1500"),
				CurrentBidder:   ptr.Of("7"),
				BidCount:        ptr.Of("2"),
				EndTime:         ptr.Of("1772370000000"),
				ImminentMinutes: ptr.Of("3"),
				Extended:        ptr.Of("true"),
				Status:          ptr.Of("running"),
			},
			want: shared.AuctionSnapshot{
				AuctionID:       1,
				CurrentPrice:    decimal.NewFromInt(1500),
				CurrentBidderID: ptr.Of(int64(7)),
				BidCount:        2,
				EndAt:           end,
				ImminentMinutes: 3,
				Extended:        true,
				Status:          auction.StatusRunning,
			},
		},
		{
			name: "rfc3339 end and no leader",
			raw: shared.RawSnapshot{
				CurrentPrice:    ptr.Of("500"),
				CurrentBidder:   ptr.Of("0"),
				BidCount:        ptr.Of("0"),
				EndTime:         ptr.Of("2026-03-01T13:00:00Z"),
				ImminentMinutes: ptr.Of("3"),
				Extended:        ptr.Of("false"),
				Status:          ptr.Of("READY"),
			},
			want: shared.AuctionSnapshot{
				AuctionID:       1,
				CurrentPrice:    decimal.NewFromInt(500),
				EndAt:           end,
				ImminentMinutes: 3,
				Status:          auction.StatusReady,
			},
		},
		{
			name: "garbage becomes zero values",
			raw: shared.RawSnapshot{
				CurrentPrice:    ptr.Of("abc"),
				CurrentBidder:   ptr.Of("-4"),
				BidCount:        ptr.Of("x"),
				EndTime:         ptr.Of("soon"),
				ImminentMinutes: ptr.Of(""),
				Extended:        ptr.Of("yes"),
				Status:          ptr.Of(" deadline "),
			},
			want: shared.AuctionSnapshot{
				AuctionID:    1,
				CurrentPrice: decimal.Zero,
				Status:       auction.StatusDeadline,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queries.ParseSnapshot(1, tt.raw)
			opts := cmp.Options{
				cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
				cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
			}
			if diff := cmp.Diff(tt.want, got, opts...); diff != "" {
				t.Errorf("ParseSnapshot() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetSnapshot(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*gomock.Controller, *sharedmock.MockSnapshotStore, *sharedmock.MockAuctionRepository, queries.SnapshotQueries) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockSnapshotStore(ctrl)
		auctions := sharedmock.NewMockAuctionRepository(ctrl)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
				return fn(ctx, nil)
			}).AnyTimes()
		return ctrl, store, auctions, queries.NewSnapshotQueries(store, auctions, uow, clock.NewMockClock(builder.BaseTime))
	}

	t.Run("incomplete snapshot is rebuilt from the durable row", func(t *testing.T) {
		_, store, auctions, q := setup(t)
		a := builder.NewAuctionBuilder().LedBy(7, 1200, 2).BuildDomain()

		store.EXPECT().Read(gomock.Any(), int64(1)).Return(shared.RawSnapshot{CurrentPrice: ptr.Of("1200")}, nil)
		auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(a, nil)
		store.EXPECT().Write(gomock.Any(), gomock.Any(), shared.SnapshotTTL(a.EndAt(), builder.BaseTime)).Return(nil)

		snap, err := q.GetSnapshot(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.BidCount)
	})

	t.Run("unknown auction", func(t *testing.T) {
		_, store, auctions, q := setup(t)
		store.EXPECT().Read(gomock.Any(), int64(9)).Return(shared.RawSnapshot{}, nil)
		auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("auction not found", nil, infra.KindNotFound))

		_, err := q.GetSnapshot(ctx, 9)
		assert.True(t, errs.Is(err, errs.ErrAuctionNotFound))
	})

	t.Run("present snapshot is never recovered", func(t *testing.T) {
		_, store, _, q := setup(t)
		store.EXPECT().Read(gomock.Any(), int64(1)).Return(shared.RawSnapshot{}, nil)

		_, ok, err := q.GetSnapshotIfPresent(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("status sync falls back to a full write", func(t *testing.T) {
		_, store, _, q := setup(t)
		a := builder.NewAuctionBuilder().BuildDomain()
		store.EXPECT().SetStatus(gomock.Any(), int64(1), "RUNNING").Return(false, nil)
		store.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, q.SyncStatus(ctx, a))
	})
}

func TestSnapshotTTL(t *testing.T) {
	now := builder.BaseTime
	assert.Equal(t, time.Hour+shared.SnapshotGrace, shared.SnapshotTTL(now.Add(time.Hour), now))
	assert.Equal(t, time.Minute, shared.SnapshotTTL(now.Add(-time.Hour), now))
}
