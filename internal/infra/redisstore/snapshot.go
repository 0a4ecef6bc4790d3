package redisstore

import (
	"context"
	"strconv"
	"time"

	"auction-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type SnapshotStore struct {
	client redis.UniversalClient
}

func NewSnapshotStore(client redis.UniversalClient) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Read(ctx context.Context, auctionID int64) (shared.RawSnapshot, error) {
	values, err := s.client.MGet(ctx, auctionKeys(auctionID)...).Result()
	if err != nil {
		return shared.RawSnapshot{}, cacheErr(err, "failed to read auction snapshot")
	}

	raw := make([]*string, len(values))
	for i, v := range values {
		if str, ok := v.(string); ok {
			raw[i] = &str
		}
	}
	return shared.RawSnapshot{
		CurrentPrice:    raw[0],
		CurrentBidder:   raw[1],
		BidCount:        raw[2],
		EndTime:         raw[3],
		ImminentMinutes: raw[4],
		Extended:        raw[5],
		Status:          raw[6],
	}, nil
}

// Write replaces every snapshot key and resets their TTL.
func (s *SnapshotStore) Write(ctx context.Context, snap shared.AuctionSnapshot, ttl time.Duration) error {
	id := snap.AuctionID
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, AuctionKey(id, fieldCurrentPrice), formatAmount(snap.CurrentPrice), ttl)
		p.Set(ctx, AuctionKey(id, fieldCurrentBidder), formatBidder(snap.CurrentBidderID), ttl)
		p.Set(ctx, AuctionKey(id, fieldCurrentBidCount), strconv.Itoa(snap.BidCount), ttl)
		p.Set(ctx, AuctionKey(id, fieldEndTime), strconv.FormatInt(snap.EndAt.UnixMilli(), 10), ttl)
		p.Set(ctx, AuctionKey(id, fieldImminentMinutes), strconv.Itoa(snap.ImminentMinutes), ttl)
		p.Set(ctx, AuctionKey(id, fieldIsExtended), strconv.FormatBool(snap.Extended), ttl)
		p.Set(ctx, AuctionKey(id, fieldStatus), snap.Status.String(), ttl)
		return nil
	})
	return cacheErr(err, "failed to write auction snapshot")
}

func (s *SnapshotStore) ApplyBid(ctx context.Context, auctionID int64, price decimal.Decimal, bidderID *int64, bidCount int) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, AuctionKey(auctionID, fieldCurrentPrice), formatAmount(price), redis.KeepTTL)
		p.Set(ctx, AuctionKey(auctionID, fieldCurrentBidder), formatBidder(bidderID), redis.KeepTTL)
		p.Set(ctx, AuctionKey(auctionID, fieldCurrentBidCount), strconv.Itoa(bidCount), redis.KeepTTL)
		return nil
	})
	return cacheErr(err, "failed to apply bid to snapshot")
}

func (s *SnapshotStore) SetEnd(ctx context.Context, auctionID int64, endAt time.Time, extended bool, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, AuctionKey(auctionID, fieldEndTime), strconv.FormatInt(endAt.UnixMilli(), 10), redis.KeepTTL)
		p.Set(ctx, AuctionKey(auctionID, fieldIsExtended), strconv.FormatBool(extended), redis.KeepTTL)
		for _, key := range auctionKeys(auctionID) {
			p.Expire(ctx, key, ttl)
		}
		return nil
	})
	return cacheErr(err, "failed to update snapshot end time")
}

// SetStatus only writes when the status key still exists so that an expired
// snapshot is rebuilt in full on the next read.
func (s *SnapshotStore) SetStatus(ctx context.Context, auctionID int64, status string) (bool, error) {
	ok, err := s.client.SetXX(ctx, AuctionKey(auctionID, fieldStatus), status, redis.KeepTTL).Result()
	if err != nil {
		return false, cacheErr(err, "failed to update snapshot status")
	}
	return ok, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, auctionID int64) error {
	err := s.client.Del(ctx, auctionKeys(auctionID)...).Err()
	return cacheErr(err, "failed to delete auction snapshot")
}

func formatAmount(d decimal.Decimal) string {
	return d.Truncate(0).String()
}

func formatBidder(bidderID *int64) string {
	if bidderID == nil {
		return noBidder
	}
	return strconv.FormatInt(*bidderID, 10)
}
