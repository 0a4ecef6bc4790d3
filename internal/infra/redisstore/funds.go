package redisstore

import (
	"context"
	"strings"
	"time"

	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const fundCacheMissReply = "FUND_CACHE_MISS"

// holdScript moves ARGV[1] from balance to locked and returns the new balance.
// The result may be negative; the caller compensates.
var holdScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 or redis.call('EXISTS', KEYS[2]) == 0 then
  return redis.error_reply('` + fundCacheMissReply + `')
end
local remain = redis.call('DECRBY', KEYS[1], ARGV[1])
redis.call('INCRBY', KEYS[2], ARGV[1])
return remain
`)

// releaseScript is the inverse of holdScript. Missing counters are left
// alone so that the next warm-up reloads them from the wallet row.
var releaseScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 or redis.call('EXISTS', KEYS[2]) == 0 then
  return 0
end
redis.call('INCRBY', KEYS[1], ARGV[1])
redis.call('DECRBY', KEYS[2], ARGV[1])
return 1
`)

type FundStore struct {
	client redis.UniversalClient
}

func NewFundStore(client redis.UniversalClient) *FundStore {
	return &FundStore{client: client}
}

func (s *FundStore) Exists(ctx context.Context, userID int64) (bool, error) {
	n, err := s.client.Exists(ctx, BalanceKey(userID), LockedBalanceKey(userID)).Result()
	if err != nil {
		return false, cacheErr(err, "failed to check fund cache")
	}
	return n == 2, nil
}

func (s *FundStore) Warm(ctx context.Context, userID int64, balance, locked decimal.Decimal, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SetNX(ctx, BalanceKey(userID), formatAmount(balance), ttl)
		p.SetNX(ctx, LockedBalanceKey(userID), formatAmount(locked), ttl)
		return nil
	})
	return cacheErr(err, "failed to warm fund cache")
}

func (s *FundStore) Hold(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	keys := []string{BalanceKey(userID), LockedBalanceKey(userID)}
	remain, err := holdScript.Run(ctx, s.client, keys, amount.IntPart()).Int64()
	if err != nil {
		if strings.Contains(err.Error(), fundCacheMissReply) {
			return decimal.Zero, errs.Wrapf(shared.ErrFundCacheMiss, "user %d", userID)
		}
		return decimal.Zero, cacheErr(err, "failed to hold funds")
	}
	return decimal.NewFromInt(remain), nil
}

func (s *FundStore) Release(ctx context.Context, userID int64, amount decimal.Decimal) error {
	keys := []string{BalanceKey(userID), LockedBalanceKey(userID)}
	err := releaseScript.Run(ctx, s.client, keys, amount.IntPart()).Err()
	return cacheErr(err, "failed to release funds")
}

func (s *FundStore) Balances(ctx context.Context, userID int64) (balance, locked decimal.Decimal, found bool, err error) {
	values, err := s.client.MGet(ctx, BalanceKey(userID), LockedBalanceKey(userID)).Result()
	if err != nil {
		return decimal.Zero, decimal.Zero, false, cacheErr(err, "failed to read fund cache")
	}
	b, okB := values[0].(string)
	l, okL := values[1].(string)
	if !okB || !okL {
		return decimal.Zero, decimal.Zero, false, nil
	}
	balance, err = decimal.NewFromString(b)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, cacheErr(err, "corrupt balance value")
	}
	locked, err = decimal.NewFromString(l)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, cacheErr(err, "corrupt locked balance value")
	}
	return balance, locked, true, nil
}

func (s *FundStore) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(userIDs)*2)
	for _, id := range userIDs {
		keys = append(keys, BalanceKey(id), LockedBalanceKey(id))
	}
	return cacheErr(s.client.Del(ctx, keys...).Err(), "failed to invalidate fund cache")
}
