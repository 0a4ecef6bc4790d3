package commands

import (
	"context"
	"log/slog"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/ptr"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/usecase/shared"
)

type RollbackResult struct {
	UserID int64
	Plans  []auction.RollbackPlan
}

type RollbackCommands interface {
	// RollbackAuctionsForBlockedUser undoes every live lead of userID that was
	// won against another bidder. All durable changes commit together.
	RollbackAuctionsForBlockedUser(ctx context.Context, userID int64) (*RollbackResult, error)
}

type rollbackUseCaseImpl struct {
	uow       shared.UnitOfWork
	auctions  shared.AuctionRepository
	bids      shared.BidRepository
	locker    shared.Locker
	snapshots queries.SnapshotQueries
	funds     shared.FundStore
	index     shared.PriceIndex
	publisher shared.EventPublisher
	bidCfg    config.BidConfig
	fundsCfg  config.FundsConfig
	clock     clock.Clock
}

func NewRollbackUseCase(
	uow shared.UnitOfWork,
	auctions shared.AuctionRepository,
	bids shared.BidRepository,
	locker shared.Locker,
	snapshots queries.SnapshotQueries,
	funds shared.FundStore,
	index shared.PriceIndex,
	publisher shared.EventPublisher,
	cfg config.Config,
	clk clock.Clock,
) RollbackCommands {
	return &rollbackUseCaseImpl{
		uow:       uow,
		auctions:  auctions,
		bids:      bids,
		locker:    locker,
		snapshots: snapshots,
		funds:     funds,
		index:     index,
		publisher: publisher,
		bidCfg:    cfg.Bid,
		fundsCfg:  cfg.Funds,
		clock:     clk,
	}
}

func (r *rollbackUseCaseImpl) RollbackAuctionsForBlockedUser(ctx context.Context, userID int64) (*RollbackResult, error) {
	var ids []int64
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var lerr error
		ids, lerr = r.auctions.ListLiveIDsLedBy(ctx, db, userID)
		return lerr
	})
	if err != nil {
		return nil, err
	}
	result := &RollbackResult{UserID: userID}
	if len(ids) == 0 {
		return result, nil
	}

	auctionLocks, err := acquireLocks(ctx, r.locker, auctionLockKeys(ids), r.bidCfg.LockWait, r.bidCfg.RollbackLockLease)
	if err != nil {
		return nil, err
	}
	defer auctionLocks.release(ctx)

	var plans []auction.RollbackPlan
	err = r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var perr error
		plans, perr = r.plan(ctx, db, ids, userID, false)
		return perr
	})
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return result, nil
	}

	users := []int64{userID}
	for _, p := range plans {
		if p.HasRestoredLeader() {
			users = append(users, *p.RestoredLeaderID)
		}
	}
	userLocks, err := acquireLocks(ctx, r.locker, userLockKeys(users), r.fundsCfg.UserLockWait, r.fundsCfg.UserLockLease)
	if err != nil {
		return nil, err
	}
	defer userLocks.release(ctx)

	// A lapsed auction lock means the fast path may have accepted bids the
	// plan does not know about.
	if err := auctionLocks.extend(ctx); err != nil {
		return nil, err
	}
	if err := userLocks.extend(ctx); err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := r.plan(ctx, tx.DB(), ids, userID, true)
		if err != nil {
			return err
		}
		if !samePlans(plans, current) {
			return errs.ErrRollbackChanged
		}
		for _, p := range current {
			if _, err := tx.Bids().DeleteByAuctionAndBidder(ctx, tx.DB(), p.AuctionID, userID); err != nil {
				return err
			}
			if err := tx.Auctions().Restore(ctx, tx.DB(), p); err != nil {
				return err
			}
		}
		return r.reverseDurableFunds(ctx, tx, current)
	})
	if err != nil {
		return nil, err
	}

	locked := true
	if err := auctionLocks.extend(ctx); err != nil {
		slog.Error("auction locks lapsed during rollback, clearing snapshots", "user_id", userID, "error", err.Error())
		locked = false
	}
	r.resync(ctx, plans, locked)
	result.Plans = plans
	slog.Info("rolled back auctions for blocked user", "user_id", userID, "count", len(plans))
	return result, nil
}

// plan computes a rollback for every listed auction still led by userID.
func (r *rollbackUseCaseImpl) plan(ctx context.Context, db sqlc.DBTX, ids []int64, userID int64, forUpdate bool) ([]auction.RollbackPlan, error) {
	plans := make([]auction.RollbackPlan, 0, len(ids))
	for _, id := range sortedUnique(ids) {
		var (
			a   *auction.Auction
			err error
		)
		if forUpdate {
			a, err = r.auctions.FindByIDForUpdate(ctx, db, id)
		} else {
			a, err = r.auctions.FindByID(ctx, db, id)
		}
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		if !a.Status().IsLive() {
			continue
		}
		bids, err := r.bids.ListByAuction(ctx, db, id)
		if err != nil {
			return nil, err
		}
		if p, ok := auction.PlanRollback(a, bids, userID); ok {
			plans = append(plans, p)
		} else {
			slog.Debug("no rollback needed", "auction_id", id, "user_id", userID)
		}
	}
	return plans, nil
}

// reverseDurableFunds releases the blocked user's holds and re-holds the
// restored leaders' bids. Wallets are locked in ascending user id order.
func (r *rollbackUseCaseImpl) reverseDurableFunds(ctx context.Context, tx shared.Tx, plans []auction.RollbackPlan) error {
	users := make([]int64, 0, len(plans)+1)
	for _, p := range plans {
		users = append(users, p.BlockedUserID)
		if p.HasRestoredLeader() {
			users = append(users, *p.RestoredLeaderID)
		}
	}

	wallets := make(map[int64]*wallet.Wallet, len(users))
	for _, id := range sortedUnique(users) {
		w, err := tx.Wallets().FindByUserIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrWalletNotFound)
			}
			return err
		}
		wallets[id] = w
	}

	for _, p := range plans {
		auctionID := p.AuctionID
		blocked := wallets[p.BlockedUserID]
		if err := blocked.Release(p.ReleasedAmount); err != nil {
			return errs.Wrapf(err, "release auction %d hold of user %d", auctionID, p.BlockedUserID)
		}
		if err := saveWithAudit(ctx, tx, blocked, wallet.TxRollbackRelease, p.ReleasedAmount, &auctionID, nil); err != nil {
			return err
		}
		if !p.HasRestoredLeader() {
			continue
		}
		leader := wallets[*p.RestoredLeaderID]
		if err := leader.Hold(p.RestoredPrice); err != nil {
			return errs.Wrapf(err, "re-hold auction %d bid of user %d", auctionID, *p.RestoredLeaderID)
		}
		if err := saveWithAudit(ctx, tx, leader, wallet.TxRollbackHold, p.RestoredPrice, &auctionID, nil); err != nil {
			return err
		}
	}
	return nil
}

// resync rewrites the fast path after commit. Failures are logged; the next
// read recovers from the durable rows once the caches are invalidated.
// resync overwrites the snapshots with the restored rows only while the
// auction locks are held. Otherwise the snapshots are cleared and the next
// read recovers them from the durable rows.
func (r *rollbackUseCaseImpl) resync(ctx context.Context, plans []auction.RollbackPlan, locked bool) {
	ctx = context.WithoutCancel(ctx)
	ids := make([]int64, 0, len(plans))
	users := make([]int64, 0, len(plans)+1)
	for _, p := range plans {
		ids = append(ids, p.AuctionID)
		users = append(users, p.BlockedUserID)
		if p.HasRestoredLeader() {
			users = append(users, *p.RestoredLeaderID)
		}
	}

	if locked {
		r.syncRestored(ctx, ids)
	} else {
		for _, id := range ids {
			if err := r.snapshots.ClearSnapshot(ctx, id); err != nil {
				slog.Warn("failed to clear snapshot after rollback", "auction_id", id, "error", err.Error())
			}
		}
	}

	for _, p := range plans {
		if err := r.funds.Release(ctx, p.BlockedUserID, p.ReleasedAmount); err != nil {
			slog.Warn("failed to release cached hold", "auction_id", p.AuctionID, "user_id", p.BlockedUserID, "error", err.Error())
		}
		if p.HasRestoredLeader() {
			if _, err := r.funds.Hold(ctx, *p.RestoredLeaderID, p.RestoredPrice); err != nil && !errs.Is(err, shared.ErrFundCacheMiss) {
				slog.Warn("failed to re-hold cached bid", "auction_id", p.AuctionID, "user_id", *p.RestoredLeaderID, "error", err.Error())
			}
		}
	}
	if err := r.funds.Invalidate(ctx, sortedUnique(users)...); err != nil {
		slog.Warn("failed to invalidate fund caches after rollback", "error", err.Error())
	}

	now := r.clock.Now()
	events := make([]shared.Event, 0, len(plans))
	for _, p := range plans {
		events = append(events, shared.Event{
			Type:       shared.EventBidRolledBack,
			AuctionID:  p.AuctionID,
			OccurredAt: now,
			Payload: map[string]any{
				"blockedUserId":    p.BlockedUserID,
				"restoredLeaderId": p.RestoredLeaderID,
				"restoredPrice":    p.RestoredPrice.String(),
				"bidCount":         p.RestoredBidCount,
			},
		})
	}
	if err := r.publisher.Publish(ctx, events...); err != nil {
		slog.Warn("failed to publish rollback events", "error", err.Error())
	}
}

func samePlans(a, b []auction.RollbackPlan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].AuctionID != b[i].AuctionID ||
			!a[i].ReleasedAmount.Equal(b[i].ReleasedAmount) ||
			!a[i].RestoredPrice.Equal(b[i].RestoredPrice) ||
			a[i].RestoredBidCount != b[i].RestoredBidCount ||
			!ptr.Equal(a[i].RestoredLeaderID, b[i].RestoredLeaderID) {
			return false
		}
	}
	return true
}

func (r *rollbackUseCaseImpl) syncRestored(ctx context.Context, ids []int64) {
	var restored []*auction.Auction
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		restored, ferr = r.auctions.FindByIDs(ctx, db, ids)
		return ferr
	})
	if err != nil {
		slog.Error("failed to reload rolled back auctions", "error", err.Error())
		return
	}
	for _, a := range restored {
		if err := r.snapshots.SyncSnapshot(ctx, a); err != nil {
			slog.Warn("failed to resync snapshot after rollback", "auction_id", a.ID(), "error", err.Error())
		}
		if err := r.index.UpdatePrice(ctx, a.ID(), a.CategoryID(), a.CurrentPrice()); err != nil {
			slog.Warn("failed to update price index after rollback", "auction_id", a.ID(), "error", err.Error())
		}
	}
}
