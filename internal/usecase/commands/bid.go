package commands

import (
	"context"
	"log/slog"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidInput struct {
	AuctionID int64
	BidderID  int64
	Amount    decimal.Decimal
	RequestID uuid.UUID
}

type BidOutcome struct {
	RequestID        uuid.UUID
	AuctionID        int64
	BidderID         int64
	Amount           decimal.Decimal
	PreviousBidderID *int64
	PreviousAmount   decimal.Decimal
	BidCount         int
	AcceptedAt       time.Time
	Extended         bool
}

type BidCommands interface {
	PlaceBid(ctx context.Context, in PlaceBidInput) (*BidOutcome, error)
}

type bidUseCaseImpl struct {
	guard     shared.RequestGuard
	locker    shared.Locker
	snapshots queries.SnapshotQueries
	store     shared.SnapshotStore
	funds     FundCommands
	queue     shared.BidQueue
	extender  Extender
	publisher shared.EventPublisher
	policy    auction.IncrementPolicy
	cfg       config.BidConfig
	clock     clock.Clock
}

func NewBidUseCase(
	guard shared.RequestGuard,
	locker shared.Locker,
	snapshots queries.SnapshotQueries,
	store shared.SnapshotStore,
	funds FundCommands,
	queue shared.BidQueue,
	extender Extender,
	publisher shared.EventPublisher,
	cfg config.Config,
	clk clock.Clock,
) BidCommands {
	return &bidUseCaseImpl{
		guard:     guard,
		locker:    locker,
		snapshots: snapshots,
		store:     store,
		funds:     funds,
		queue:     queue,
		extender:  extender,
		publisher: publisher,
		policy: auction.IncrementPolicy{
			Rate: cfg.Bid.MinIncrementRate,
			Unit: cfg.Bid.MinIncrementUnit,
		},
		cfg:   cfg.Bid,
		clock: clk,
	}
}

func (b *bidUseCaseImpl) PlaceBid(ctx context.Context, in PlaceBidInput) (*BidOutcome, error) {
	if in.RequestID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrInvalidRequest, "request id is required")
	}

	claimed, err := b.guard.Claim(ctx, in.RequestID, b.cfg.IdempotencyTTL)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, errs.Wrapf(errs.ErrDuplicateRequest, "request %s", in.RequestID)
	}

	outcome, err := b.acceptUnderLock(ctx, in)
	if err != nil {
		if ferr := b.guard.Forget(context.WithoutCancel(ctx), in.RequestID); ferr != nil {
			slog.Warn("failed to release request id after rejected bid",
				"request_id", in.RequestID.String(),
				"error", ferr.Error())
		}
		return nil, err
	}

	b.afterAccept(ctx, outcome)
	return outcome, nil
}

func (b *bidUseCaseImpl) acceptUnderLock(ctx context.Context, in PlaceBidInput) (*BidOutcome, error) {
	release, err := acquireOrdered(ctx, b.locker,
		[]string{shared.AuctionLockKey(in.AuctionID)}, b.cfg.LockWait, b.cfg.LockLease)
	if err != nil {
		return nil, err
	}
	defer release()

	snap, err := b.snapshots.GetSnapshot(ctx, in.AuctionID)
	if err != nil {
		return nil, err
	}

	now := b.clock.Now()
	if err := b.policy.Validate(snap.BidContext(), in.BidderID, in.Amount, now); err != nil {
		return nil, err
	}

	previousAmount := decimal.Zero
	if snap.CurrentBidderID != nil {
		previousAmount = snap.CurrentPrice
	}
	if err := b.funds.LockFunds(ctx, in.BidderID, snap.CurrentBidderID, in.Amount, previousAmount); err != nil {
		return nil, err
	}

	bidder := in.BidderID
	newCount := snap.BidCount + 1
	if err := b.store.ApplyBid(ctx, in.AuctionID, in.Amount, &bidder, newCount); err != nil {
		b.compensate(ctx, in, snap, previousAmount, false)
		return nil, err
	}

	ev := shared.BidAccepted{
		RequestID:        in.RequestID,
		AuctionID:        in.AuctionID,
		BidderID:         in.BidderID,
		PreviousBidderID: snap.CurrentBidderID,
		Amount:           in.Amount,
		PreviousAmount:   previousAmount,
		AcceptedAt:       now,
	}
	if err := b.queue.Enqueue(ctx, ev); err != nil {
		b.compensate(ctx, in, snap, previousAmount, true)
		return nil, errs.Mark(errs.Wrap(err, "failed to enqueue accepted bid"), errs.ErrQueueUnavailable)
	}

	slog.Info("bid accepted",
		"auction_id", in.AuctionID,
		"bidder_id", in.BidderID,
		"amount", in.Amount.String(),
		"request_id", in.RequestID.String())

	return &BidOutcome{
		RequestID:        in.RequestID,
		AuctionID:        in.AuctionID,
		BidderID:         in.BidderID,
		Amount:           in.Amount,
		PreviousBidderID: snap.CurrentBidderID,
		PreviousAmount:   previousAmount,
		BidCount:         newCount,
		AcceptedAt:       now,
	}, nil
}

// compensate undoes the fast-path effects of a bid that could not be handed
// to reconciliation. It runs while the auction mutex is still held.
func (b *bidUseCaseImpl) compensate(ctx context.Context, in PlaceBidInput, before *shared.AuctionSnapshot, previousAmount decimal.Decimal, snapshotWritten bool) {
	cctx := context.WithoutCancel(ctx)
	if snapshotWritten {
		if err := b.store.ApplyBid(cctx, in.AuctionID, before.CurrentPrice, before.CurrentBidderID, before.BidCount); err != nil {
			slog.Error("failed to restore snapshot after rejected bid",
				"auction_id", in.AuctionID,
				"error", err.Error())
		}
	}
	if err := b.funds.UnlockFunds(cctx, in.BidderID, before.CurrentBidderID, in.Amount, previousAmount); err != nil {
		slog.Error("failed to restore funds after rejected bid",
			"auction_id", in.AuctionID,
			"bidder_id", in.BidderID,
			"error", err.Error())
	}
}

// afterAccept runs outside the mutex; its failures never fail the bid.
func (b *bidUseCaseImpl) afterAccept(ctx context.Context, outcome *BidOutcome) {
	if !b.cfg.ExtensionDisabled && b.extender != nil {
		extended, err := b.extender.ExtendIfImminent(ctx, outcome.AuctionID, outcome.AcceptedAt)
		if err != nil {
			slog.Warn("extension check failed", "auction_id", outcome.AuctionID, "error", err.Error())
		}
		outcome.Extended = extended
	}

	err := b.publisher.Publish(ctx, shared.Event{
		Type:       shared.EventBidSucceeded,
		AuctionID:  outcome.AuctionID,
		OccurredAt: outcome.AcceptedAt,
		Payload: map[string]any{
			"bidderId":  outcome.BidderID,
			"amount":    outcome.Amount.String(),
			"bidCount":  outcome.BidCount,
			"requestId": outcome.RequestID.String(),
		},
	})
	if err != nil {
		slog.Warn("failed to publish bid event", "auction_id", outcome.AuctionID, "error", err.Error())
	}
}
