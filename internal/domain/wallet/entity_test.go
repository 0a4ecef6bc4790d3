//go:build unit

package wallet_test

import (
	"testing"

	"auction-engine/internal/domain/wallet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestWallet(t *testing.T) {
	t.Run("hold and release conserve the total", func(t *testing.T) {
		w := wallet.Reconstruct(1, 10, d(1000), d(0))

		require.NoError(t, w.Hold(d(300)))
		assert.True(t, w.Balance().Equal(d(700)))
		assert.True(t, w.Locked().Equal(d(300)))

		require.NoError(t, w.Release(d(100)))
		assert.True(t, w.Balance().Equal(d(800)))
		assert.True(t, w.Locked().Equal(d(200)))
		assert.True(t, w.Total().Equal(d(1000)))
	})

	t.Run("insufficient funds leave balances unchanged", func(t *testing.T) {
		w := wallet.Reconstruct(1, 10, d(100), d(50))

		assert.ErrorIs(t, w.Hold(d(101)), wallet.ErrInsufficientFunds)
		assert.ErrorIs(t, w.Release(d(51)), wallet.ErrInsufficientLocked)
		assert.ErrorIs(t, w.Consume(d(51)), wallet.ErrInsufficientLocked)
		assert.True(t, w.Balance().Equal(d(100)))
		assert.True(t, w.Locked().Equal(d(50)))
	})

	t.Run("consume drops locked funds", func(t *testing.T) {
		w := wallet.Reconstruct(1, 10, d(100), d(50))

		require.NoError(t, w.Consume(d(50)))
		assert.True(t, w.Locked().IsZero())
		assert.True(t, w.Total().Equal(d(100)))
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		w := wallet.Reconstruct(1, 10, d(100), d(50))

		assert.ErrorIs(t, w.Hold(d(0)), wallet.ErrInvalidAmount)
		assert.ErrorIs(t, w.Release(d(-1)), wallet.ErrInvalidAmount)
		assert.ErrorIs(t, w.Consume(d(0)), wallet.ErrInvalidAmount)
	})
}
