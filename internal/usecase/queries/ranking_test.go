//go:build unit

package queries_test

import (
	"context"
	"testing"

	"auction-engine/internal/usecase/queries"
	"auction-engine/tests/common/builder"
	queriesmock "auction-engine/tests/mock/queries"
	sharedmock "auction-engine/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTopAuctions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int64
	}{
		{name: "default limit", limit: 0, wantLimit: queries.DefaultRankingLimit},
		{name: "explicit limit", limit: 5, wantLimit: 5},
		{name: "capped limit", limit: 1000, wantLimit: queries.MaxRankingLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ranking := sharedmock.NewMockPriceRanking(ctrl)
			snapshots := queriesmock.NewMockSnapshotQueries(ctrl)
			q := queries.NewRankingQueries(ranking, snapshots)

			ranking.EXPECT().TopByPrice(gomock.Any(), nil, tt.wantLimit).Return([]int64{2, 1}, nil)
			second := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) { b.ID = 2 }).BuildSnapshot()
			snapshots.EXPECT().GetSnapshotIfPresent(gomock.Any(), int64(2)).Return(second, true, nil)
			snapshots.EXPECT().GetSnapshotIfPresent(gomock.Any(), int64(1)).Return(nil, false, nil)

			got, err := q.TopAuctions(ctx, nil, tt.limit)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, int64(2), got[0].AuctionID)
		})
	}
}
