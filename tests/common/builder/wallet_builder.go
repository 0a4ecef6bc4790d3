//go:build unit || e2e

package builder

import (
	"auction-engine/internal/domain/wallet"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

type WalletBuilder struct {
	ID      int64
	UserID  int64
	Balance decimal.Decimal
	Locked  decimal.Decimal
}

func NewWalletBuilder(userID int64) *WalletBuilder {
	return &WalletBuilder{
		ID:      userID + 1000,
		UserID:  userID,
		Balance: decimal.NewFromInt(10000),
		Locked:  decimal.Zero,
	}
}

func (b *WalletBuilder) With(mutate func(*WalletBuilder)) *WalletBuilder {
	mutate(b)
	return b
}

func (b *WalletBuilder) Funds(balance, locked int64) *WalletBuilder {
	b.Balance = decimal.NewFromInt(balance)
	b.Locked = decimal.NewFromInt(locked)
	return b
}

func (b *WalletBuilder) BuildDomain() *wallet.Wallet {
	return wallet.Reconstruct(b.ID, b.UserID, b.Balance, b.Locked)
}

func (b *WalletBuilder) BuildInfra() sqlc.Wallets {
	return sqlc.Wallets{
		ID:            b.ID,
		UserID:        b.UserID,
		Balance:       pgconv.DecimalToNumeric(b.Balance),
		LockedBalance: pgconv.DecimalToNumeric(b.Locked),
	}
}
