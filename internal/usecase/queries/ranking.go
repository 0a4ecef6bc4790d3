package queries

import (
	"context"
	"log/slog"

	"auction-engine/internal/usecase/shared"
)

const (
	DefaultRankingLimit = 20
	MaxRankingLimit     = 100
)

type RankingQueries interface {
	// TopAuctions lists live auctions by descending current price, globally
	// or within one category. Auctions without a fast-path snapshot are skipped.
	TopAuctions(ctx context.Context, categoryID *int64, limit int) ([]*shared.AuctionSnapshot, error)
}

type rankingQueriesImpl struct {
	ranking   shared.PriceRanking
	snapshots SnapshotQueries
}

func NewRankingQueries(ranking shared.PriceRanking, snapshots SnapshotQueries) RankingQueries {
	return &rankingQueriesImpl{ranking: ranking, snapshots: snapshots}
}

func (q *rankingQueriesImpl) TopAuctions(ctx context.Context, categoryID *int64, limit int) ([]*shared.AuctionSnapshot, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	limit = min(limit, MaxRankingLimit)

	ids, err := q.ranking.TopByPrice(ctx, categoryID, int64(limit))
	if err != nil {
		return nil, err
	}

	out := make([]*shared.AuctionSnapshot, 0, len(ids))
	for _, id := range ids {
		snap, ok, err := q.snapshots.GetSnapshotIfPresent(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Debug("ranked auction has no snapshot", "auction_id", id)
			continue
		}
		out = append(out, snap)
	}
	return out, nil
}
