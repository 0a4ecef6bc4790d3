package commands

import (
	"context"

	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// saveWithAudit persists w and appends the matching wallet_transactions row.
func saveWithAudit(ctx context.Context, tx shared.Tx, w *wallet.Wallet, kind wallet.TransactionType, amount decimal.Decimal, auctionID *int64, requestID *uuid.UUID) error {
	if err := tx.Wallets().Save(ctx, tx.DB(), w); err != nil {
		return err
	}
	return tx.Wallets().RecordTransaction(ctx, tx.DB(), shared.WalletTransaction{
		WalletID:  w.ID(),
		Type:      kind,
		Amount:    amount,
		AuctionID: auctionID,
		RequestID: requestID,
	})
}
