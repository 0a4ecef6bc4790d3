package converter

import (
	"auction-engine/internal/domain/wallet"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func WalletFromRow(row sqlc.Wallets) (*wallet.Wallet, error) {
	balance, err := pgconv.DecimalFromNumeric(row.Balance)
	if err != nil {
		return nil, err
	}
	locked, err := pgconv.DecimalFromNumeric(row.LockedBalance)
	if err != nil {
		return nil, err
	}
	return wallet.Reconstruct(row.ID, row.UserID, balance, locked), nil
}

func WalletToUpdateParams(w *wallet.Wallet) sqlc.UpdateWalletBalancesParams {
	return sqlc.UpdateWalletBalancesParams{
		ID:            w.ID(),
		Balance:       pgconv.DecimalToNumeric(w.Balance()),
		LockedBalance: pgconv.DecimalToNumeric(w.Locked()),
	}
}

func WalletTransactionToParams(t shared.WalletTransaction) sqlc.CreateWalletTransactionParams {
	var requestID pgtype.UUID
	if t.RequestID != nil {
		requestID = pgconv.UUIDToPgtype(*t.RequestID)
	}
	return sqlc.CreateWalletTransactionParams{
		WalletID:  t.WalletID,
		Type:      t.Type.String(),
		Amount:    pgconv.DecimalToNumeric(t.Amount),
		AuctionID: pgconv.Int64PtrToPgtype(t.AuctionID),
		RequestID: requestID,
	}
}
