package commands

import (
	"context"
	"log/slog"

	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	UserID  int64
	Balance decimal.Decimal
	Locked  decimal.Decimal
}

// FundCommands moves provisional fund locks on the fast path. The durable
// wallet rows catch up through reconciliation.
type FundCommands interface {
	// LockFunds holds amount for the bidder and refunds previousAmount to the
	// previous leader. It fails with wallet.ErrInsufficientFunds leaving
	// balances untouched.
	LockFunds(ctx context.Context, bidderID int64, previousBidderID *int64, amount, previousAmount decimal.Decimal) error
	// UnlockFunds is the exact inverse of LockFunds.
	UnlockFunds(ctx context.Context, bidderID int64, previousBidderID *int64, amount, previousAmount decimal.Decimal) error
	Balances(ctx context.Context, userID int64) (*WalletBalance, error)
	Invalidate(ctx context.Context, userIDs ...int64) error
}

type fundUseCaseImpl struct {
	store   shared.FundStore
	wallets shared.WalletRepository
	uow     shared.UnitOfWork
	cfg     config.FundsConfig
}

func NewFundUseCase(
	store shared.FundStore,
	wallets shared.WalletRepository,
	uow shared.UnitOfWork,
	cfg config.Config,
) FundCommands {
	return &fundUseCaseImpl{
		store:   store,
		wallets: wallets,
		uow:     uow,
		cfg:     cfg.Funds,
	}
}

func (f *fundUseCaseImpl) LockFunds(ctx context.Context, bidderID int64, previousBidderID *int64, amount, previousAmount decimal.Decimal) error {
	if !amount.IsPositive() {
		return wallet.ErrInvalidAmount
	}
	refund := hasRefund(bidderID, previousBidderID, previousAmount)

	if err := f.ensureWarm(ctx, bidderID); err != nil {
		return err
	}
	if refund {
		if err := f.ensureWarm(ctx, *previousBidderID); err != nil {
			return err
		}
	}

	remain, err := f.hold(ctx, bidderID, amount)
	if err != nil {
		return err
	}
	if remain.IsNegative() {
		if rerr := f.store.Release(context.WithoutCancel(ctx), bidderID, amount); rerr != nil {
			slog.Error("failed to undo fund hold",
				"user_id", bidderID,
				"amount", amount.String(),
				"error", rerr.Error())
		}
		return errs.Wrapf(wallet.ErrInsufficientFunds, "user %d short by %s", bidderID, remain.Neg())
	}

	if refund {
		if err := f.store.Release(ctx, *previousBidderID, previousAmount); err != nil {
			slog.Error("failed to refund previous bidder on fast path",
				"user_id", *previousBidderID,
				"amount", previousAmount.String(),
				"error", err.Error())
		}
	}
	return nil
}

func (f *fundUseCaseImpl) UnlockFunds(ctx context.Context, bidderID int64, previousBidderID *int64, amount, previousAmount decimal.Decimal) error {
	if err := f.store.Release(ctx, bidderID, amount); err != nil {
		return err
	}
	if !hasRefund(bidderID, previousBidderID, previousAmount) {
		return nil
	}
	remain, err := f.store.Hold(ctx, *previousBidderID, previousAmount)
	if err != nil {
		if errs.Is(err, shared.ErrFundCacheMiss) {
			return nil
		}
		return err
	}
	if remain.IsNegative() {
		slog.Warn("previous bidder balance negative after re-hold",
			"user_id", *previousBidderID,
			"balance", remain.String())
	}
	return nil
}

func (f *fundUseCaseImpl) Balances(ctx context.Context, userID int64) (*WalletBalance, error) {
	if err := f.ensureWarm(ctx, userID); err != nil {
		return nil, err
	}
	balance, locked, found, err := f.store.Balances(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.Wrapf(errs.ErrCacheOperationFailed, "fund cache for user %d expired while reading", userID)
	}
	return &WalletBalance{UserID: userID, Balance: balance, Locked: locked}, nil
}

func (f *fundUseCaseImpl) Invalidate(ctx context.Context, userIDs ...int64) error {
	return f.store.Invalidate(ctx, userIDs...)
}

// hold retries once when the counters expire between warm-up and the hold.
func (f *fundUseCaseImpl) hold(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	remain, err := f.store.Hold(ctx, userID, amount)
	if !errs.Is(err, shared.ErrFundCacheMiss) {
		return remain, err
	}
	if err := f.ensureWarm(ctx, userID); err != nil {
		return decimal.Zero, err
	}
	return f.store.Hold(ctx, userID, amount)
}

func (f *fundUseCaseImpl) ensureWarm(ctx context.Context, userID int64) error {
	ok, err := f.store.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	var w *wallet.Wallet
	err = f.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		w, ferr = f.wallets.FindByUserID(ctx, db, userID)
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrWalletNotFound)
		}
		return err
	}
	return f.store.Warm(ctx, userID, w.Balance(), w.Locked(), f.cfg.CacheTTL)
}

func hasRefund(bidderID int64, previousBidderID *int64, previousAmount decimal.Decimal) bool {
	return previousBidderID != nil && *previousBidderID != bidderID && previousAmount.IsPositive()
}
