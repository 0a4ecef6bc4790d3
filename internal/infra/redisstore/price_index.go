package redisstore

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceIndex keeps sorted sets of live auctions by current price, globally
// and per category.
type PriceIndex struct {
	client redis.UniversalClient
}

func NewPriceIndex(client redis.UniversalClient) *PriceIndex {
	return &PriceIndex{client: client}
}

func (x *PriceIndex) UpdatePrice(ctx context.Context, auctionID int64, categoryID *int64, price decimal.Decimal) error {
	member := redis.Z{Score: price.InexactFloat64(), Member: strconv.FormatInt(auctionID, 10)}
	_, err := x.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, livePriceIndexKey, member)
		if categoryID != nil {
			p.ZAdd(ctx, categoryPriceIndexKey(*categoryID), member)
		}
		return nil
	})
	return cacheErr(err, "failed to update price index")
}

func (x *PriceIndex) Remove(ctx context.Context, auctionID int64, categoryID *int64) error {
	member := strconv.FormatInt(auctionID, 10)
	_, err := x.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRem(ctx, livePriceIndexKey, member)
		if categoryID != nil {
			p.ZRem(ctx, categoryPriceIndexKey(*categoryID), member)
		}
		return nil
	})
	return cacheErr(err, "failed to remove from price index")
}

// TopByPrice returns auction ids ordered by descending price.
func (x *PriceIndex) TopByPrice(ctx context.Context, categoryID *int64, limit int64) ([]int64, error) {
	key := livePriceIndexKey
	if categoryID != nil {
		key = categoryPriceIndexKey(*categoryID)
	}
	members, err := x.client.ZRevRange(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, cacheErr(err, "failed to read price index")
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
