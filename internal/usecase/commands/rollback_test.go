//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	blocked  int64 = 11
	restored int64 = 12
)

func newRollback(f *fastPath) commands.RollbackCommands {
	return commands.NewRollbackUseCase(f.uow, f.auctions, f.bids, f.locker, f.snapshots,
		f.fundStore, f.index, f.events, f.cfg, f.clk)
}

func contestedHistory() []auction.Bid {
	return builder.Bids(1,
		builder.BidEntry{BidderID: blocked, Price: 1000},
		builder.BidEntry{BidderID: restored, Price: 1500},
		builder.BidEntry{BidderID: blocked, Price: 2000},
	)
}

func TestRollbackAuctionsForBlockedUser(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the previous leader durably and on the fast path", func(t *testing.T) {
		f := newFastPath(t)
		uc := newRollback(f)
		f.seedSnapshot(t, builder.NewAuctionBuilder().LedBy(blocked, 2000, 3))
		require.NoError(t, f.fundStore.Warm(ctx, blocked, dec(0), dec(2000), time.Minute))

		led := func() *auction.Auction { return builder.NewAuctionBuilder().LedBy(blocked, 2000, 3).BuildDomain() }
		blockedWallet := builder.NewWalletBuilder(blocked).Funds(0, 2000).BuildDomain()
		restoredWallet := builder.NewWalletBuilder(restored).Funds(1500, 0).BuildDomain()
		var holdTypes []wallet.TransactionType

		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return([]int64{1}, nil)
		f.auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(led(), nil)
		f.auctions.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(led(), nil)
		f.bids.EXPECT().ListByAuction(gomock.Any(), gomock.Any(), int64(1)).Return(contestedHistory(), nil).Times(2)
		f.bids.EXPECT().DeleteByAuctionAndBidder(gomock.Any(), gomock.Any(), int64(1), blocked).Return(int64(2), nil)
		f.auctions.EXPECT().Restore(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, plan auction.RollbackPlan) error {
				assert.Equal(t, restored, *plan.RestoredLeaderID)
				assert.Equal(t, 2, plan.RestoredBidCount)
				return nil
			})
		f.wallets.EXPECT().FindByUserIDForUpdate(gomock.Any(), gomock.Any(), blocked).Return(blockedWallet, nil)
		f.wallets.EXPECT().FindByUserIDForUpdate(gomock.Any(), gomock.Any(), restored).Return(restoredWallet, nil)
		f.wallets.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.wallets.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tx shared.WalletTransaction) error {
				holdTypes = append(holdTypes, tx.Type)
				return nil
			}).Times(2)
		f.auctions.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), []int64{1}).
			Return([]*auction.Auction{builder.NewAuctionBuilder().LedBy(restored, 1500, 2).BuildDomain()}, nil)

		res, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		require.NoError(t, err)
		require.Len(t, res.Plans, 1)

		assert.True(t, blockedWallet.Locked().IsZero())
		assert.True(t, blockedWallet.Balance().Equal(dec(2000)))
		assert.True(t, restoredWallet.Locked().Equal(dec(1500)))
		assert.Equal(t, []wallet.TransactionType{wallet.TxRollbackRelease, wallet.TxRollbackHold}, holdTypes)

		snap := f.currentSnapshot(t, 1)
		assert.Equal(t, restored, *snap.CurrentBidderID)
		assert.True(t, snap.CurrentPrice.Equal(dec(1500)))
		assert.Equal(t, 2, snap.BidCount)

		assert.False(t, f.srv.Exists("user:11:balance"))
		assert.Equal(t, []shared.EventType{shared.EventBidRolledBack}, f.events.types())
	})

	t.Run("nothing led means nothing to do", func(t *testing.T) {
		f := newFastPath(t)
		uc := newRollback(f)
		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return(nil, nil)

		res, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		require.NoError(t, err)
		assert.Empty(t, res.Plans)
	})

	t.Run("uncontested lead is kept", func(t *testing.T) {
		f := newFastPath(t)
		uc := newRollback(f)
		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return([]int64{1}, nil)
		f.auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(builder.NewAuctionBuilder().LedBy(blocked, 1000, 1).BuildDomain(), nil)
		f.bids.EXPECT().ListByAuction(gomock.Any(), gomock.Any(), int64(1)).
			Return(builder.Bids(1, builder.BidEntry{BidderID: blocked, Price: 1000}), nil)

		res, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		require.NoError(t, err)
		assert.Empty(t, res.Plans)
		assert.Empty(t, f.events.types())
	})

	t.Run("auction lock lapsing before commit aborts without durable changes", func(t *testing.T) {
		f := newFastPath(t)
		f.cfg.Bid.RollbackLockLease = time.Second
		uc := newRollback(f)
		f.seedSnapshot(t, builder.NewAuctionBuilder().LedBy(blocked, 2000, 3))

		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return([]int64{1}, nil)
		f.auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).
			DoAndReturn(func(context.Context, any, int64) (*auction.Auction, error) {
				f.srv.FastForward(2 * time.Second)
				return builder.NewAuctionBuilder().LedBy(blocked, 2000, 3).BuildDomain(), nil
			})
		f.bids.EXPECT().ListByAuction(gomock.Any(), gomock.Any(), int64(1)).Return(contestedHistory(), nil)

		_, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		assert.True(t, errs.Is(err, errs.ErrLockContention))
		assert.Empty(t, f.events.types())

		snap := f.currentSnapshot(t, 1)
		assert.Equal(t, blocked, *snap.CurrentBidderID)
	})

	t.Run("auction lock lapsing during commit clears instead of overwriting", func(t *testing.T) {
		f := newFastPath(t)
		f.cfg.Bid.RollbackLockLease = time.Second
		uc := newRollback(f)
		f.seedSnapshot(t, builder.NewAuctionBuilder().LedBy(blocked, 2000, 3))

		led := func() *auction.Auction { return builder.NewAuctionBuilder().LedBy(blocked, 2000, 3).BuildDomain() }
		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return([]int64{1}, nil)
		f.auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(led(), nil)
		f.auctions.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(led(), nil)
		f.bids.EXPECT().ListByAuction(gomock.Any(), gomock.Any(), int64(1)).Return(contestedHistory(), nil).Times(2)
		f.bids.EXPECT().DeleteByAuctionAndBidder(gomock.Any(), gomock.Any(), int64(1), blocked).
			DoAndReturn(func(context.Context, any, int64, int64) (int64, error) {
				// The lease runs out and a bid lands on the fast path.
				f.srv.FastForward(2 * time.Second)
				late := int64(13)
				require.NoError(t, f.snapshotStore.ApplyBid(ctx, 1, dec(2300), &late, 4))
				return 2, nil
			})
		f.auctions.EXPECT().Restore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.wallets.EXPECT().FindByUserIDForUpdate(gomock.Any(), gomock.Any(), blocked).
			Return(builder.NewWalletBuilder(blocked).Funds(0, 2000).BuildDomain(), nil)
		f.wallets.EXPECT().FindByUserIDForUpdate(gomock.Any(), gomock.Any(), restored).
			Return(builder.NewWalletBuilder(restored).Funds(1500, 0).BuildDomain(), nil)
		f.wallets.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.wallets.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		require.NoError(t, err)
		require.Len(t, res.Plans, 1)

		_, ok, err := f.snapshots.GetSnapshotIfPresent(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []shared.EventType{shared.EventBidRolledBack}, f.events.types())
	})

	t.Run("state changed between planning and commit", func(t *testing.T) {
		f := newFastPath(t)
		uc := newRollback(f)
		f.auctions.EXPECT().ListLiveIDsLedBy(gomock.Any(), gomock.Any(), blocked).Return([]int64{1}, nil)
		f.auctions.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(builder.NewAuctionBuilder().LedBy(blocked, 2000, 3).BuildDomain(), nil)
		f.auctions.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(1)).
			Return(builder.NewAuctionBuilder().LedBy(restored, 2200, 4).BuildDomain(), nil)
		f.bids.EXPECT().ListByAuction(gomock.Any(), gomock.Any(), int64(1)).Return(contestedHistory(), nil).AnyTimes()

		_, err := uc.RollbackAuctionsForBlockedUser(ctx, blocked)
		assert.True(t, errs.Is(err, errs.ErrRollbackChanged))
		assert.Empty(t, f.events.types())
	})
}
