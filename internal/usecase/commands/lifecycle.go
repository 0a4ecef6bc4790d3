package commands

import (
	"context"
	"log/slog"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/usecase/shared"
)

// LifecycleCommands drives auction status transitions. Every transition is a
// single conditional bulk update, so reruns only act on rows that still match.
type LifecycleCommands interface {
	Expose(ctx context.Context) ([]int64, error)
	MarkDeadline(ctx context.Context) ([]int64, error)
	End(ctx context.Context) ([]int64, error)
	Cancel(ctx context.Context, auctionID, sellerID int64) error
	ExtendIfImminent(ctx context.Context, auctionID int64, bidAt time.Time) (bool, error)
	BroadcastActive(ctx context.Context) (int, error)
}

type lifecycleUseCaseImpl struct {
	uow        shared.UnitOfWork
	auctions   shared.AuctionRepository
	snapshots  queries.SnapshotQueries
	store      shared.SnapshotStore
	locker     shared.Locker
	funds      FundCommands
	index      shared.PriceIndex
	categories CategoryLookup
	publisher  shared.EventPublisher
	cfg        config.SchedulerConfig
	bidCfg     config.BidConfig
	clock      clock.Clock
}

func NewLifecycleUseCase(
	uow shared.UnitOfWork,
	auctions shared.AuctionRepository,
	snapshots queries.SnapshotQueries,
	store shared.SnapshotStore,
	locker shared.Locker,
	funds FundCommands,
	index shared.PriceIndex,
	categories CategoryLookup,
	publisher shared.EventPublisher,
	cfg config.Config,
	clk clock.Clock,
) LifecycleCommands {
	return &lifecycleUseCaseImpl{
		uow:        uow,
		auctions:   auctions,
		snapshots:  snapshots,
		store:      store,
		locker:     locker,
		funds:      funds,
		index:      index,
		categories: categories,
		publisher:  publisher,
		cfg:        cfg.Scheduler,
		bidCfg:     cfg.Bid,
		clock:      clk,
	}
}

// Expose starts READY auctions whose start time has come and that have been
// listed for at least the grace period. The seller deposit is returned in
// the same transaction.
func (l *lifecycleUseCaseImpl) Expose(ctx context.Context) ([]int64, error) {
	now := l.clock.Now()
	spec := shared.TransitionSpec{
		From:          auction.StatusReady,
		To:            auction.StatusRunning,
		Now:           now,
		StartedBy:     true,
		CreatedBefore: now.Add(-l.cfg.ExposeGrace),
		SetStartAt:    true,
		SettleDeposit: true,
	}

	var moved []shared.TransitionedAuction
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		moved, terr = tx.Transitions().Transition(ctx, tx.DB(), spec)
		if terr != nil {
			return terr
		}
		return l.returnDeposits(ctx, tx, moved)
	})
	if err != nil {
		return nil, err
	}
	if len(moved) == 0 {
		return nil, nil
	}

	ids := transitionedIDs(moved)
	exposed, err := l.load(ctx, ids)
	if err != nil {
		return ids, err
	}

	events := make([]shared.Event, 0, len(exposed))
	for _, a := range exposed {
		if err := l.snapshots.SyncSnapshot(ctx, a); err != nil {
			slog.Warn("failed to write snapshot for exposed auction", "auction_id", a.ID(), "error", err.Error())
		}
		if err := l.index.UpdatePrice(ctx, a.ID(), a.CategoryID(), a.CurrentPrice()); err != nil {
			slog.Warn("failed to index exposed auction", "auction_id", a.ID(), "error", err.Error())
		}
		events = append(events, shared.Event{
			Type:       shared.EventAuctionRunning,
			AuctionID:  a.ID(),
			OccurredAt: now,
			Payload:    shared.SnapshotFromAuction(a),
		})
	}

	sellers := make([]int64, 0, len(moved))
	for _, m := range moved {
		sellers = append(sellers, m.SellerID)
	}
	if err := l.funds.Invalidate(ctx, sortedUnique(sellers)...); err != nil {
		slog.Warn("failed to invalidate seller fund caches", "error", err.Error())
	}
	l.publish(ctx, events...)

	slog.Info("auctions exposed", "count", len(ids))
	return ids, nil
}

// returnDeposits releases each seller's locked deposit. Wallets are locked in
// ascending seller id order.
func (l *lifecycleUseCaseImpl) returnDeposits(ctx context.Context, tx shared.Tx, moved []shared.TransitionedAuction) error {
	bySeller := make(map[int64][]shared.TransitionedAuction)
	sellers := make([]int64, 0, len(moved))
	for _, m := range moved {
		if !m.Deposit.IsPositive() {
			continue
		}
		bySeller[m.SellerID] = append(bySeller[m.SellerID], m)
		sellers = append(sellers, m.SellerID)
	}

	for _, sellerID := range sortedUnique(sellers) {
		w, err := tx.Wallets().FindByUserIDForUpdate(ctx, tx.DB(), sellerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Error("seller wallet missing; deposit not returned", "seller_id", sellerID)
				continue
			}
			return err
		}
		for _, m := range bySeller[sellerID] {
			if err := w.Release(m.Deposit); err != nil {
				slog.Error("seller deposit was not locked; nothing to return",
					"seller_id", sellerID,
					"auction_id", m.ID,
					"deposit", m.Deposit.String(),
					"error", err.Error())
				continue
			}
			auctionID := m.ID
			if err := saveWithAudit(ctx, tx, w, wallet.TxDepositReturn, m.Deposit, &auctionID, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *lifecycleUseCaseImpl) MarkDeadline(ctx context.Context) ([]int64, error) {
	now := l.clock.Now()
	spec := shared.TransitionSpec{
		From:        auction.StatusRunning,
		To:          auction.StatusDeadline,
		Now:         now,
		EndedBefore: now,
	}

	var moved []shared.TransitionedAuction
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		moved, terr = tx.Transitions().Transition(ctx, tx.DB(), spec)
		return terr
	})
	if err != nil || len(moved) == 0 {
		return nil, err
	}

	ids := transitionedIDs(moved)
	closed, err := l.load(ctx, ids)
	if err != nil {
		return ids, err
	}

	events := make([]shared.Event, 0, len(closed))
	for _, a := range closed {
		// Only the status changes here: the fast path may still be ahead of
		// the durable price while reconciliation drains.
		if err := l.snapshots.SyncStatus(ctx, a); err != nil {
			slog.Warn("failed to update snapshot status", "auction_id", a.ID(), "error", err.Error())
		}
		events = append(events, shared.Event{
			Type:       shared.EventAuctionDeadline,
			AuctionID:  a.ID(),
			OccurredAt: now,
			Payload:    map[string]any{"endAt": a.EndAt()},
		})
	}
	l.publish(ctx, events...)

	slog.Info("auctions reached deadline", "count", len(ids))
	return ids, nil
}

// End settles DEADLINE auctions once every accepted bid is durable.
func (l *lifecycleUseCaseImpl) End(ctx context.Context) ([]int64, error) {
	now := l.clock.Now()
	spec := shared.TransitionSpec{
		From:        auction.StatusDeadline,
		To:          auction.StatusEnded,
		Now:         now,
		EndedBefore: now.Add(-l.cfg.SettleDelay),
		NoPending:   true,
	}

	var moved []shared.TransitionedAuction
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Transitions().Candidates(ctx, tx.DB(), spec)
		if err != nil || len(ids) == 0 {
			return err
		}
		candidates, err := tx.Auctions().FindByIDs(ctx, tx.DB(), ids)
		if err != nil {
			return err
		}

		settled := make([]int64, 0, len(candidates))
		for _, a := range candidates {
			if l.durableCaughtUp(ctx, a) {
				settled = append(settled, a.ID())
			}
		}
		target := spec
		target.IDs = settled
		moved, err = tx.Transitions().Transition(ctx, tx.DB(), target)
		return err
	})
	if err != nil || len(moved) == 0 {
		return nil, err
	}

	ids := transitionedIDs(moved)
	ended, err := l.load(ctx, ids)
	if err != nil {
		return ids, err
	}

	events := make([]shared.Event, 0, len(ended))
	for _, a := range ended {
		if err := l.snapshots.SyncSnapshot(ctx, a); err != nil {
			slog.Warn("failed to write snapshot for ended auction", "auction_id", a.ID(), "error", err.Error())
		}
		if err := l.index.Remove(ctx, a.ID(), a.CategoryID()); err != nil {
			slog.Warn("failed to remove ended auction from index", "auction_id", a.ID(), "error", err.Error())
		}
		events = append(events, shared.Event{
			Type:       shared.EventAuctionEnded,
			AuctionID:  a.ID(),
			OccurredAt: now,
			Payload: map[string]any{
				"winnerId":   a.CurrentBidderID(),
				"finalPrice": a.CurrentPrice().String(),
				"bidCount":   a.BidCount(),
			},
		})
	}
	l.publish(ctx, events...)

	slog.Info("auctions ended", "count", len(ids))
	return ids, nil
}

// durableCaughtUp reports whether the durable bid count has reached the
// fast-path count. An absent snapshot has nothing left to reconcile.
func (l *lifecycleUseCaseImpl) durableCaughtUp(ctx context.Context, a *auction.Auction) bool {
	snap, ok, err := l.snapshots.GetSnapshotIfPresent(ctx, a.ID())
	if err != nil {
		slog.Warn("cannot read snapshot; postponing end", "auction_id", a.ID(), "error", err.Error())
		return false
	}
	if !ok {
		return true
	}
	if snap.BidCount > a.BidCount() {
		slog.Info("durable bids lag fast path; postponing end",
			"auction_id", a.ID(),
			"fast_path_count", snap.BidCount,
			"durable_count", a.BidCount())
		return false
	}
	return true
}

// Cancel withdraws an auction nobody has bid on. A deposit still held for a
// READY auction is returned inside the refund window and forfeited after it.
func (l *lifecycleUseCaseImpl) Cancel(ctx context.Context, auctionID, sellerID int64) error {
	release, err := acquireOrdered(ctx, l.locker,
		[]string{shared.AuctionLockKey(auctionID)}, l.bidCfg.LockWait, l.bidCfg.LockLease)
	if err != nil {
		return err
	}
	defer release()

	if snap, ok, err := l.snapshots.GetSnapshotIfPresent(ctx, auctionID); err != nil {
		return err
	} else if ok && snap.BidCount > 0 {
		return errs.ErrAuctionHasBids
	}

	now := l.clock.Now()
	var canceled *auction.Auction
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Auctions().FindByIDForUpdate(ctx, tx.DB(), auctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrAuctionNotFound)
			}
			return err
		}
		if a.SellerID() != sellerID {
			return errs.ErrNotSeller
		}
		if !a.Status().IsCancellable() {
			return errs.Wrapf(errs.ErrNotCancellable, "status %s", a.Status())
		}
		pending, err := tx.BidRequests().CountPendingByAuction(ctx, tx.DB(), auctionID)
		if err != nil {
			return err
		}
		if a.BidCount() > 0 || pending > 0 {
			return errs.ErrAuctionHasBids
		}

		ok, err := tx.Auctions().Cancel(ctx, tx.DB(), auctionID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrNotCancellable
		}
		if a.Status() == auction.StatusReady && a.Deposit().IsPositive() {
			if err := l.settleCanceledDeposit(ctx, tx, a, now); err != nil {
				return err
			}
		}
		canceled = a
		return nil
	})
	if err != nil {
		return err
	}

	if err := l.snapshots.ClearSnapshot(ctx, auctionID); err != nil {
		slog.Warn("failed to clear snapshot for canceled auction", "auction_id", auctionID, "error", err.Error())
	}
	if err := l.index.Remove(ctx, auctionID, canceled.CategoryID()); err != nil {
		slog.Warn("failed to remove canceled auction from index", "auction_id", auctionID, "error", err.Error())
	}
	if err := l.funds.Invalidate(ctx, sellerID); err != nil {
		slog.Warn("failed to invalidate seller fund cache", "seller_id", sellerID, "error", err.Error())
	}
	l.publish(ctx, shared.Event{
		Type:       shared.EventAuctionCanceled,
		AuctionID:  auctionID,
		OccurredAt: now,
		Payload:    map[string]any{"sellerId": sellerID},
	})
	return nil
}

func (l *lifecycleUseCaseImpl) settleCanceledDeposit(ctx context.Context, tx shared.Tx, a *auction.Auction, now time.Time) error {
	w, err := tx.Wallets().FindByUserIDForUpdate(ctx, tx.DB(), a.SellerID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrWalletNotFound)
		}
		return err
	}

	kind := wallet.TxDepositForfeit
	if a.CancelRefundable(now, l.cfg.CancelRefundWindow) {
		kind = wallet.TxDepositReturn
		err = w.Release(a.Deposit())
	} else {
		err = w.Consume(a.Deposit())
	}
	if err != nil {
		return err
	}
	auctionID := a.ID()
	return saveWithAudit(ctx, tx, w, kind, a.Deposit(), &auctionID, nil)
}

// ExtendIfImminent pushes the end time out when a bid lands inside the
// imminent window. The durable update is a compare-and-set on the old end.
func (l *lifecycleUseCaseImpl) ExtendIfImminent(ctx context.Context, auctionID int64, bidAt time.Time) (bool, error) {
	if snap, ok, err := l.snapshots.GetSnapshotIfPresent(ctx, auctionID); err == nil && ok {
		if !auction.ShouldExtend(snap.EndAt, bidAt, l.imminentMinutes(snap.ImminentMinutes)) {
			return false, nil
		}
	}

	var a *auction.Auction
	err := l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		a, ferr = l.auctions.FindByID(ctx, db, auctionID)
		return ferr
	})
	if err != nil {
		return false, err
	}
	if a.Status() != auction.StatusRunning || !auction.ShouldExtend(a.EndAt(), bidAt, l.imminentMinutes(a.ImminentMinutes())) {
		return false, nil
	}

	newEnd := auction.ExtendedEnd(a.EndAt(), l.cfg.Extension)
	var ok bool
	err = l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var eerr error
		ok, eerr = l.auctions.ExtendEnd(ctx, db, auctionID, a.EndAt(), newEnd)
		return eerr
	})
	if err != nil || !ok {
		return false, err
	}

	ttl := shared.SnapshotTTL(newEnd, l.clock.Now())
	if err := l.store.SetEnd(ctx, auctionID, newEnd, true, ttl); err != nil {
		slog.Warn("failed to update snapshot end time", "auction_id", auctionID, "error", err.Error())
	}
	l.publish(ctx, shared.Event{
		Type:       shared.EventAuctionExtended,
		AuctionID:  auctionID,
		OccurredAt: bidAt,
		Payload: map[string]any{
			"endAt":           newEnd,
			"isExtended":      true,
			"extendedMinutes": int(l.cfg.Extension / time.Minute),
		},
	})
	slog.Info("auction extended", "auction_id", auctionID, "end_at", newEnd)
	return true, nil
}

// BroadcastActive publishes the fast-path snapshot of every live auction.
func (l *lifecycleUseCaseImpl) BroadcastActive(ctx context.Context) (int, error) {
	var ids []int64
	err := l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var lerr error
		ids, lerr = l.auctions.ListLiveIDs(ctx, db)
		return lerr
	})
	if err != nil {
		return 0, err
	}

	now := l.clock.Now()
	events := make([]shared.Event, 0, len(ids))
	for _, id := range ids {
		snap, ok, err := l.snapshots.GetSnapshotIfPresent(ctx, id)
		if err != nil {
			slog.Warn("failed to read snapshot for broadcast", "auction_id", id, "error", err.Error())
			continue
		}
		if !ok {
			continue
		}
		events = append(events, shared.Event{
			Type:       shared.EventAuctionSnapshot,
			AuctionID:  id,
			OccurredAt: now,
			Payload:    snap,
		})
	}
	l.publish(ctx, events...)
	return len(events), nil
}

func (l *lifecycleUseCaseImpl) imminentMinutes(v int) int {
	if v > 0 {
		return v
	}
	return l.cfg.ImminentMinutes
}

func (l *lifecycleUseCaseImpl) load(ctx context.Context, ids []int64) ([]*auction.Auction, error) {
	var out []*auction.Auction
	err := l.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		out, ferr = l.auctions.FindByIDs(ctx, db, ids)
		return ferr
	})
	return out, err
}

func (l *lifecycleUseCaseImpl) publish(ctx context.Context, events ...shared.Event) {
	if len(events) == 0 {
		return
	}
	if err := l.publisher.Publish(ctx, events...); err != nil {
		slog.Warn("failed to publish lifecycle events", "count", len(events), "error", err.Error())
	}
}

func transitionedIDs(moved []shared.TransitionedAuction) []int64 {
	ids := make([]int64, 0, len(moved))
	for _, m := range moved {
		ids = append(ids, m.ID)
	}
	return ids
}
