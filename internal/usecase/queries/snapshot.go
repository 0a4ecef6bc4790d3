package queries

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const localTimeLayout = "2006-01-02T15:04:05"

// SnapshotQueries reads the fast-path auction state and owns the only path that
// writes it.
type SnapshotQueries interface {
	// GetSnapshot recovers from the durable row when any key is missing.
	GetSnapshot(ctx context.Context, auctionID int64) (*shared.AuctionSnapshot, error)
	// GetSnapshotIfPresent never recovers.
	GetSnapshotIfPresent(ctx context.Context, auctionID int64) (*shared.AuctionSnapshot, bool, error)
	SyncSnapshot(ctx context.Context, a *auction.Auction) error
	// SyncStatus updates only the status of a present snapshot and falls back
	// to SyncSnapshot when it is absent.
	SyncStatus(ctx context.Context, a *auction.Auction) error
	ClearSnapshot(ctx context.Context, auctionID int64) error
}

type snapshotQueriesImpl struct {
	store    shared.SnapshotStore
	auctions shared.AuctionRepository
	uow      shared.UnitOfWork
	clock    clock.Clock
}

func NewSnapshotQueries(
	store shared.SnapshotStore,
	auctions shared.AuctionRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
) SnapshotQueries {
	return &snapshotQueriesImpl{
		store:    store,
		auctions: auctions,
		uow:      uow,
		clock:    clk,
	}
}

func (q *snapshotQueriesImpl) GetSnapshot(ctx context.Context, auctionID int64) (*shared.AuctionSnapshot, error) {
	raw, err := q.store.Read(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if raw.Complete() {
		snap := ParseSnapshot(auctionID, raw)
		return &snap, nil
	}

	slog.Info("recovering auction snapshot", "auction_id", auctionID)
	var a *auction.Auction
	err = q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		a, ferr = q.auctions.FindByID(ctx, db, auctionID)
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuctionNotFound)
		}
		return nil, err
	}
	if err := q.SyncSnapshot(ctx, a); err != nil {
		return nil, err
	}
	snap := shared.SnapshotFromAuction(a)
	return &snap, nil
}

func (q *snapshotQueriesImpl) GetSnapshotIfPresent(ctx context.Context, auctionID int64) (*shared.AuctionSnapshot, bool, error) {
	raw, err := q.store.Read(ctx, auctionID)
	if err != nil {
		return nil, false, err
	}
	if !raw.Complete() {
		return nil, false, nil
	}
	snap := ParseSnapshot(auctionID, raw)
	return &snap, true, nil
}

func (q *snapshotQueriesImpl) SyncSnapshot(ctx context.Context, a *auction.Auction) error {
	snap := shared.SnapshotFromAuction(a)
	return q.store.Write(ctx, snap, shared.SnapshotTTL(snap.EndAt, q.clock.Now()))
}

func (q *snapshotQueriesImpl) SyncStatus(ctx context.Context, a *auction.Auction) error {
	ok, err := q.store.SetStatus(ctx, a.ID(), a.Status().String())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return q.SyncSnapshot(ctx, a)
}

func (q *snapshotQueriesImpl) ClearSnapshot(ctx context.Context, auctionID int64) error {
	return q.store.Delete(ctx, auctionID)
}

// ParseSnapshot reads stored values leniently: unparsable numbers become 0,
// a bidder id <= 0 means no leader.
func ParseSnapshot(auctionID int64, raw shared.RawSnapshot) shared.AuctionSnapshot {
	return shared.AuctionSnapshot{
		AuctionID:       auctionID,
		CurrentPrice:    parseAmount(raw.CurrentPrice),
		CurrentBidderID: parseBidder(raw.CurrentBidder),
		BidCount:        parseInt(raw.BidCount),
		EndAt:           parseEndTime(raw.EndTime),
		ImminentMinutes: parseInt(raw.ImminentMinutes),
		Extended:        parseBool(raw.Extended),
		Status:          parseStatus(raw.Status),
	}
}

func parseAmount(v *string) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseBidder(v *string) *int64 {
	if v == nil {
		return nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*v), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func parseInt(v *string) int {
	if v == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil {
		return 0
	}
	return n
}

// parseEndTime accepts epoch milliseconds, RFC3339 or a local ISO timestamp.
func parseEndTime(v *string) time.Time {
	if v == nil {
		return time.Time{}
	}
	s := strings.TrimSpace(*v)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(localTimeLayout, s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

func parseBool(v *string) bool {
	if v == nil {
		return false
	}
	s := strings.TrimSpace(*v)
	return strings.EqualFold(s, "true") || s == "1"
}

func parseStatus(v *string) auction.Status {
	if v == nil {
		return ""
	}
	return auction.Status(strings.ToUpper(strings.TrimSpace(*v)))
}
