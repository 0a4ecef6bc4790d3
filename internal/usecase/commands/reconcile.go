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
	"auction-engine/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

var (
	ErrBidRequestNotFailed = errs.New("bid request is not in failed state")

	errAlreadyReconciled = errs.New("bid request already reconciled")
)

type ReconcileCommands interface {
	// Reconcile applies one accepted bid durably. Registration and apply share
	// one attempt budget. It returns an error only when ctx ends; any other
	// outcome is terminal for the request.
	Reconcile(ctx context.Context, ev shared.BidAccepted) error
	ListFailed(ctx context.Context, limit int32) ([]*shared.BidRequestRecord, error)
	// RetryFailed resets a failed request to pending and enqueues it again.
	RetryFailed(ctx context.Context, requestID uuid.UUID) error
}

type reconcileUseCaseImpl struct {
	uow       shared.UnitOfWork
	requests  shared.BidRequestRepository
	queue     shared.BidQueue
	index     shared.PriceIndex
	publisher shared.EventPublisher
	cfg       config.ReconcileConfig
	clock     clock.Clock
}

func NewReconcileUseCase(
	uow shared.UnitOfWork,
	requests shared.BidRequestRepository,
	queue shared.BidQueue,
	index shared.PriceIndex,
	publisher shared.EventPublisher,
	cfg config.Config,
	clk clock.Clock,
) ReconcileCommands {
	return &reconcileUseCaseImpl{
		uow:       uow,
		requests:  requests,
		queue:     queue,
		index:     index,
		publisher: publisher,
		cfg:       cfg.Reconcile,
		clock:     clk,
	}
}

func (r *reconcileUseCaseImpl) Reconcile(ctx context.Context, ev shared.BidAccepted) error {
	var applied *auction.Auction
	registered := false
	attempt := 0
	op := func() error {
		attempt++
		if !registered {
			pending, err := r.register(ctx, ev)
			if err != nil {
				slog.Warn("bid request registration failed",
					"request_id", ev.RequestID.String(),
					"auction_id", ev.AuctionID,
					"attempt", attempt,
					"error", err.Error())
				return err
			}
			registered = true
			if !pending {
				return backoff.Permanent(errAlreadyReconciled)
			}
		}

		a, err := r.applyOnce(ctx, ev)
		if err == nil {
			applied = a
			return nil
		}
		if errs.Is(err, errAlreadyReconciled) {
			return backoff.Permanent(err)
		}
		slog.Warn("reconciliation attempt failed",
			"request_id", ev.RequestID.String(),
			"auction_id", ev.AuctionID,
			"attempt", attempt,
			"error", err.Error())
		r.recordAttempt(ctx, ev.RequestID, err)
		return err
	}

	err := backoff.Retry(op, r.newBackOff(ctx))
	switch {
	case err == nil:
		r.updatePriceIndex(ctx, applied)
		return nil
	case errs.Is(err, errAlreadyReconciled):
		return nil
	case ctx.Err() != nil:
		// Left pending for redelivery.
		return ctx.Err()
	default:
		r.fail(ctx, ev, err)
		return nil
	}
}

// register records the request and reports whether it still needs work.
func (r *reconcileUseCaseImpl) register(ctx context.Context, ev shared.BidAccepted) (bool, error) {
	pending := true
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		inserted, err := r.requests.TryInsert(ctx, db, ev)
		if err != nil || inserted {
			return err
		}
		rec, err := r.requests.Get(ctx, db, ev.RequestID)
		if err != nil {
			return err
		}
		pending = rec.Status == shared.BidRequestPending
		return nil
	})
	return pending, err
}

func (r *reconcileUseCaseImpl) applyOnce(ctx context.Context, ev shared.BidAccepted) (*auction.Auction, error) {
	var applied *auction.Auction
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bids().Create(ctx, tx.DB(), auction.Bid{
			AuctionID: ev.AuctionID,
			BidderID:  ev.BidderID,
			Price:     ev.Amount,
			RequestID: ev.RequestID,
			CreatedAt: ev.AcceptedAt,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errAlreadyReconciled)
			}
			return err
		}

		if err := r.applyWallets(ctx, tx, ev); err != nil {
			return err
		}

		if err := tx.Auctions().ApplyBid(ctx, tx.DB(), ev.AuctionID, ev.BidderID, ev.Amount); err != nil {
			return err
		}
		if applied, err = tx.Auctions().FindByID(ctx, tx.DB(), ev.AuctionID); err != nil {
			return err
		}

		ok, err := tx.BidRequests().MarkCommitted(ctx, tx.DB(), ev.RequestID)
		if err != nil {
			return err
		}
		if !ok {
			return errAlreadyReconciled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// applyWallets locks the affected wallet rows in ascending user id order.
func (r *reconcileUseCaseImpl) applyWallets(ctx context.Context, tx shared.Tx, ev shared.BidAccepted) error {
	userIDs := []int64{ev.BidderID}
	if ev.HasPreviousBidder() {
		userIDs = append(userIDs, *ev.PreviousBidderID)
	}

	wallets := make(map[int64]*wallet.Wallet, len(userIDs))
	for _, id := range sortedUnique(userIDs) {
		w, err := tx.Wallets().FindByUserIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		wallets[id] = w
	}

	auctionID := ev.AuctionID
	requestID := ev.RequestID

	bidder := wallets[ev.BidderID]
	if err := bidder.Hold(ev.Amount); err != nil {
		return err
	}
	if err := saveWithAudit(ctx, tx, bidder, wallet.TxBidHold, ev.Amount, &auctionID, &requestID); err != nil {
		return err
	}

	if !ev.HasPreviousBidder() {
		return nil
	}
	prev := wallets[*ev.PreviousBidderID]
	if err := prev.Release(ev.PreviousAmount); err != nil {
		return err
	}
	return saveWithAudit(ctx, tx, prev, wallet.TxBidRelease, ev.PreviousAmount, &auctionID, &requestID)
}

func (r *reconcileUseCaseImpl) recordAttempt(ctx context.Context, requestID uuid.UUID, cause error) {
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return r.requests.RecordAttempt(ctx, db, requestID, cause.Error())
	})
	if err != nil {
		slog.Warn("failed to record reconciliation attempt", "request_id", requestID.String(), "error", err.Error())
	}
}

func (r *reconcileUseCaseImpl) fail(ctx context.Context, ev shared.BidAccepted, cause error) {
	slog.Error("reconciliation exhausted retries; fast path and durable store diverge",
		"request_id", ev.RequestID.String(),
		"auction_id", ev.AuctionID,
		"bidder_id", ev.BidderID,
		"amount", ev.Amount.String(),
		"error", cause.Error())

	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		marked, err := r.requests.MarkFailed(ctx, db, ev.RequestID, cause.Error())
		if err != nil || marked {
			return err
		}
		// The request may never have been registered.
		inserted, err := r.requests.TryInsert(ctx, db, ev)
		if err != nil || !inserted {
			return err
		}
		_, err = r.requests.MarkFailed(ctx, db, ev.RequestID, cause.Error())
		return err
	})
	if err != nil {
		slog.Error("failed to mark bid request failed", "request_id", ev.RequestID.String(), "error", err.Error())
	}

	err = r.publisher.Publish(ctx, shared.Event{
		Type:       shared.EventReconciliationFailed,
		AuctionID:  ev.AuctionID,
		OccurredAt: r.clock.Now(),
		Payload: map[string]any{
			"requestId": ev.RequestID.String(),
			"bidderId":  ev.BidderID,
			"amount":    ev.Amount.String(),
			"error":     errs.Mark(cause, errs.ErrReconciliationFailed).Error(),
		},
	})
	if err != nil {
		slog.Warn("failed to publish reconciliation failure", "request_id", ev.RequestID.String(), "error", err.Error())
	}
}

func (r *reconcileUseCaseImpl) updatePriceIndex(ctx context.Context, a *auction.Auction) {
	if a == nil {
		return
	}
	if err := r.index.UpdatePrice(ctx, a.ID(), a.CategoryID(), a.CurrentPrice()); err != nil {
		slog.Warn("failed to update price index", "auction_id", a.ID(), "error", err.Error())
	}
}

func (r *reconcileUseCaseImpl) newBackOff(ctx context.Context) backoff.BackOff {
	retries := r.cfg.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(r.cfg.RetryDelay), uint64(retries)) // #nosec G115 -- non-negative
	return backoff.WithContext(b, ctx)
}

func (r *reconcileUseCaseImpl) ListFailed(ctx context.Context, limit int32) ([]*shared.BidRequestRecord, error) {
	var out []*shared.BidRequestRecord
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var lerr error
		out, lerr = r.requests.ListFailed(ctx, db, limit)
		return lerr
	})
	return out, err
}

func (r *reconcileUseCaseImpl) RetryFailed(ctx context.Context, requestID uuid.UUID) error {
	var rec *shared.BidRequestRecord
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		ok, err := r.requests.ResetFailed(ctx, db, requestID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Wrapf(ErrBidRequestNotFailed, "request %s", requestID)
		}
		rec, err = r.requests.Get(ctx, db, requestID)
		return err
	})
	if err != nil {
		return err
	}
	return r.queue.Enqueue(ctx, rec.Event)
}
