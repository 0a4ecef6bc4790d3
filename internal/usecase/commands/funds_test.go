//go:build unit

package commands_test

import (
	"context"
	"testing"

	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFundCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("balances warm the cache from the wallet row", func(t *testing.T) {
		f := newFastPath(t)
		f.durableWallet(bidder, 700, 300)

		got, err := f.funds.Balances(ctx, bidder)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(dec(700)))
		assert.True(t, got.Locked.Equal(dec(300)))
		assert.Equal(t, f.cfg.Funds.CacheTTL, f.srv.TTL("user:8:balance"))
	})

	t.Run("warm cache is not reread", func(t *testing.T) {
		f := newFastPath(t)
		require.NoError(t, f.fundStore.Warm(ctx, bidder, dec(50), dec(0), f.cfg.Funds.CacheTTL))

		got, err := f.funds.Balances(ctx, bidder)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(dec(50)))
	})

	t.Run("missing wallet", func(t *testing.T) {
		f := newFastPath(t)
		f.wallets.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), bidder).
			Return(nil, infra.WrapRepoErr("wallet not found", nil, infra.KindNotFound))

		_, err := f.funds.Balances(ctx, bidder)
		assert.True(t, errs.Is(err, errs.ErrWalletNotFound))
	})

	t.Run("lock then unlock is the identity", func(t *testing.T) {
		f := newFastPath(t)
		f.durableWallet(leader, 1000, 1000)
		f.durableWallet(bidder, 2000, 0)
		prev := leader

		require.NoError(t, f.funds.LockFunds(ctx, bidder, &prev, dec(1100), dec(1000)))
		balance, locked := f.cachedFunds(t, leader)
		assert.True(t, balance.Equal(dec(2000)))
		assert.True(t, locked.IsZero())

		require.NoError(t, f.funds.UnlockFunds(ctx, bidder, &prev, dec(1100), dec(1000)))
		balance, locked = f.cachedFunds(t, leader)
		assert.True(t, balance.Equal(dec(1000)))
		assert.True(t, locked.Equal(dec(1000)))
		balance, locked = f.cachedFunds(t, bidder)
		assert.True(t, balance.Equal(dec(2000)))
		assert.True(t, locked.IsZero())
	})

	t.Run("same user outbidding is not refunded", func(t *testing.T) {
		f := newFastPath(t)
		f.durableWallet(bidder, 2000, 0)
		self := bidder

		require.NoError(t, f.funds.LockFunds(ctx, bidder, &self, dec(500), dec(400)))
		balance, locked := f.cachedFunds(t, bidder)
		assert.True(t, balance.Equal(dec(1500)))
		assert.True(t, locked.Equal(dec(500)))
	})

	t.Run("unlock tolerates an expired previous bidder", func(t *testing.T) {
		f := newFastPath(t)
		f.durableWallet(bidder, 2000, 0)
		require.NoError(t, f.funds.LockFunds(ctx, bidder, nil, dec(500), dec(0)))
		prev := leader

		require.NoError(t, f.funds.UnlockFunds(ctx, bidder, &prev, dec(500), dec(400)))
		assert.False(t, f.srv.Exists("user:7:balance"))
	})

	t.Run("non-positive hold", func(t *testing.T) {
		f := newFastPath(t)
		assert.ErrorIs(t, f.funds.LockFunds(ctx, bidder, nil, dec(0), dec(0)), wallet.ErrInvalidAmount)
	})

	t.Run("invalidate drops cached counters", func(t *testing.T) {
		f := newFastPath(t)
		f.durableWallet(bidder, 2000, 0)
		_, err := f.funds.Balances(ctx, bidder)
		require.NoError(t, err)

		require.NoError(t, f.funds.Invalidate(ctx, bidder))
		assert.False(t, f.srv.Exists("user:8:balance"))
	})
}
