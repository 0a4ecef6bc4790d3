package redisstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RequestGuard claims bid request ids with SETNX.
type RequestGuard struct {
	client redis.UniversalClient
}

func NewRequestGuard(client redis.UniversalClient) *RequestGuard {
	return &RequestGuard{client: client}
}

func (g *RequestGuard) Claim(ctx context.Context, requestID uuid.UUID, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, IdempotencyKey(requestID.String()), "1", ttl).Result()
	if err != nil {
		return false, cacheErr(err, "failed to claim request id")
	}
	return ok, nil
}

func (g *RequestGuard) Forget(ctx context.Context, requestID uuid.UUID) error {
	err := g.client.Del(ctx, IdempotencyKey(requestID.String())).Err()
	return cacheErr(err, "failed to forget request id")
}
