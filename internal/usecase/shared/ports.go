package shared

import (
	"context"
	"strconv"
	"time"

	"auction-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrFundCacheMiss is returned by FundStore.Hold when the user's counters are absent.
var ErrFundCacheMiss = errs.New("fund cache miss")

// SnapshotStore is the per-auction half of the fast-path store.
type SnapshotStore interface {
	Read(ctx context.Context, auctionID int64) (RawSnapshot, error)
	Write(ctx context.Context, s AuctionSnapshot, ttl time.Duration) error
	// ApplyBid keeps the TTLs set by Write.
	ApplyBid(ctx context.Context, auctionID int64, price decimal.Decimal, bidderID *int64, bidCount int) error
	// SetEnd moves the end time and pushes every key's TTL out to ttl.
	SetEnd(ctx context.Context, auctionID int64, endAt time.Time, extended bool, ttl time.Duration) error
	// SetStatus reports false when the snapshot is absent.
	SetStatus(ctx context.Context, auctionID int64, status string) (bool, error)
	Delete(ctx context.Context, auctionID int64) error
}

// FundStore is the per-user half of the fast-path store.
type FundStore interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	// Warm sets only the counters that are missing.
	Warm(ctx context.Context, userID int64, balance, locked decimal.Decimal, ttl time.Duration) error
	// Hold moves amount from available to locked and returns the resulting available balance.
	Hold(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	Release(ctx context.Context, userID int64, amount decimal.Decimal) error
	Balances(ctx context.Context, userID int64) (balance, locked decimal.Decimal, found bool, err error)
	Invalidate(ctx context.Context, userIDs ...int64) error
}

type RequestGuard interface {
	// Claim returns false when requestID was already claimed.
	Claim(ctx context.Context, requestID uuid.UUID, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, requestID uuid.UUID) error
}

type PriceIndex interface {
	UpdatePrice(ctx context.Context, auctionID int64, categoryID *int64, price decimal.Decimal) error
	Remove(ctx context.Context, auctionID int64, categoryID *int64) error
}

type PriceRanking interface {
	// TopByPrice returns auction ids by descending current price.
	TopByPrice(ctx context.Context, categoryID *int64, limit int64) ([]int64, error)
}

type Lease interface {
	// Extend pushes the expiry out by the original lease. It fails once the
	// lock has expired or been taken by another holder.
	Extend(ctx context.Context) error
	Release(ctx context.Context) error
}

type Locker interface {
	// Acquire waits at most wait for the lock; the lock expires after lease.
	Acquire(ctx context.Context, key string, wait, lease time.Duration) (Lease, error)
}

func AuctionLockKey(auctionID int64) string {
	return "lock:auction:" + strconv.FormatInt(auctionID, 10)
}

func UserLockKey(userID int64) string {
	return "lock:user:" + strconv.FormatInt(userID, 10)
}

type BidQueue interface {
	Enqueue(ctx context.Context, ev BidAccepted) error
}

type BidHandler func(ctx context.Context, ev BidAccepted) error

type BidConsumer interface {
	// Consume blocks until ctx is done. A delivery is acknowledged only when handle returns nil.
	Consume(ctx context.Context, consumer string, handle BidHandler) error
}
