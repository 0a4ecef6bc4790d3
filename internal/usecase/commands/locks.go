package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"auction-engine/internal/usecase/shared"
)

// heldLocks is a set of leases taken in key order.
type heldLocks struct {
	keys []string
	held []shared.Lease
}

// release drops the leases in reverse order.
func (h *heldLocks) release(ctx context.Context) {
	rctx := context.WithoutCancel(ctx)
	for i := len(h.held) - 1; i >= 0; i-- {
		if err := h.held[i].Release(rctx); err != nil {
			slog.Warn("failed to release lock", "key", h.keys[i], "error", err.Error())
		}
	}
}

// extend renews every lease and fails on the first one that is no longer held.
func (h *heldLocks) extend(ctx context.Context) error {
	for _, l := range h.held {
		if err := l.Extend(ctx); err != nil {
			return err
		}
	}
	return nil
}

// acquireLocks takes every key in the given order. On failure the locks
// already held are released.
func acquireLocks(ctx context.Context, locker shared.Locker, keys []string, wait, lease time.Duration) (*heldLocks, error) {
	h := &heldLocks{keys: keys, held: make([]shared.Lease, 0, len(keys))}
	for _, key := range keys {
		l, err := locker.Acquire(ctx, key, wait, lease)
		if err != nil {
			h.release(ctx)
			return nil, err
		}
		h.held = append(h.held, l)
	}
	return h, nil
}

// acquireOrdered is acquireLocks for callers that only need to release.
func acquireOrdered(ctx context.Context, locker shared.Locker, keys []string, wait, lease time.Duration) (func(), error) {
	h, err := acquireLocks(ctx, locker, keys, wait, lease)
	if err != nil {
		return nil, err
	}
	return func() { h.release(ctx) }, nil
}

// sortedUnique returns ids ascending with duplicates removed.
func sortedUnique(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

func auctionLockKeys(ids []int64) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range sortedUnique(ids) {
		keys = append(keys, shared.AuctionLockKey(id))
	}
	return keys
}

func userLockKeys(ids []int64) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range sortedUnique(ids) {
		keys = append(keys, shared.UserLockKey(id))
	}
	return keys
}
