package lock

import (
	"context"
	"time"

	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const retryDelay = 25 * time.Millisecond

// RedsyncLocker hands out leased mutexes stored in Redis.
type RedsyncLocker struct {
	rs *redsync.Redsync
}

func NewRedsyncLocker(client redis.UniversalClient) *RedsyncLocker {
	return &RedsyncLocker{rs: redsync.New(goredis.NewPool(client))}
}

// Acquire returns errs.ErrLockContention when the lock is not obtained within wait.
func (l *RedsyncLocker) Acquire(ctx context.Context, key string, wait, lease time.Duration) (shared.Lease, error) {
	tries := int(wait/retryDelay) + 1
	m := l.rs.NewMutex(key,
		redsync.WithExpiry(lease),
		redsync.WithTries(tries),
		redsync.WithRetryDelay(retryDelay),
	)

	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	if err := m.LockContext(waitCtx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.Mark(errs.Wrapf(err, "acquire %s", key), errs.ErrLockContention)
	}
	return &mutexLease{mutex: m}, nil
}

type mutexLease struct {
	mutex *redsync.Mutex
}

func (l *mutexLease) Extend(ctx context.Context) error {
	ok, err := l.mutex.ExtendContext(ctx)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "extend %s", l.mutex.Name()), errs.ErrLockContention)
	}
	if !ok {
		return errs.Mark(errs.Newf("lock %s was no longer held", l.mutex.Name()), errs.ErrLockContention)
	}
	return nil
}

func (l *mutexLease) Release(ctx context.Context) error {
	ok, err := l.mutex.UnlockContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "release %s", l.mutex.Name())
	}
	if !ok {
		return errs.Newf("lock %s was no longer held", l.mutex.Name())
	}
	return nil
}
