package repository

import (
	"context"

	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository/converter"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/usecase/shared"
)

type WalletQueries interface {
	GetWalletByUserID(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.Wallets, error)
	GetWalletByUserIDForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.Wallets, error)
	UpdateWalletBalances(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWalletBalancesParams) error
	CreateWalletTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWalletTransactionParams) error
}

type WalletRepository struct {
	queries WalletQueries
}

func NewWalletRepository(queries WalletQueries) *WalletRepository {
	return &WalletRepository{queries: queries}
}

func (r *WalletRepository) FindByUserID(ctx context.Context, db sqlc.DBTX, userID int64) (*wallet.Wallet, error) {
	row, err := r.queries.GetWalletByUserID(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find wallet", err)
	}
	return r.toEntity(row)
}

func (r *WalletRepository) FindByUserIDForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) (*wallet.Wallet, error) {
	row, err := r.queries.GetWalletByUserIDForUpdate(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock wallet", err)
	}
	return r.toEntity(row)
}

func (r *WalletRepository) Save(ctx context.Context, db sqlc.DBTX, w *wallet.Wallet) error {
	if err := r.queries.UpdateWalletBalances(ctx, db, converter.WalletToUpdateParams(w)); err != nil {
		return infra.WrapRepoErr("failed to save wallet", err)
	}
	return nil
}

func (r *WalletRepository) RecordTransaction(ctx context.Context, db sqlc.DBTX, t shared.WalletTransaction) error {
	if err := r.queries.CreateWalletTransaction(ctx, db, converter.WalletTransactionToParams(t)); err != nil {
		return infra.WrapRepoErr("failed to record wallet transaction", err)
	}
	return nil
}

func (r *WalletRepository) toEntity(row sqlc.Wallets) (*wallet.Wallet, error) {
	w, err := converter.WalletFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert wallet row", err, infra.KindDBFailure)
	}
	return w, nil
}
