//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStop = errors.New("stop after capture")

func captureTransition(t *testing.T, spec shared.TransitionSpec) recordedQuery {
	t.Helper()
	db := &recordingDBTX{err: errStop}
	_, err := repository.NewTransitionRepository().Transition(context.Background(), db, spec)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	require.Len(t, db.calls, 1)
	return db.calls[0]
}

func TestTransitionRepository_Transition(t *testing.T) {
	now := builder.BaseTime

	t.Run("expose sets start time and settles the deposit", func(t *testing.T) {
		q := captureTransition(t, shared.TransitionSpec{
			From:          auction.StatusReady,
			To:            auction.StatusRunning,
			Now:           now,
			StartedBy:     true,
			CreatedBefore: now.Add(-5 * time.Minute),
			SetStartAt:    true,
			SettleDeposit: true,
		})

		assert.Contains(t, q.sql, "UPDATE auctions SET status = $1, updated_at = $2, start_at = COALESCE(start_at, $3), deposit_settled = $4")
		assert.Contains(t, q.sql, "status = $5")
		assert.Contains(t, q.sql, "start_at IS NULL OR start_at <= $6")
		assert.Contains(t, q.sql, "created_at <= $7")
		assert.Contains(t, q.sql, "RETURNING id, seller_id, deposit")
		assert.NotContains(t, q.sql, "bid_requests")
		assert.Equal(t, []any{"RUNNING", now, now, true, "READY", now, now.Add(-5 * time.Minute)}, q.args)
	})

	t.Run("end waits for pending reconciliation and limits ids", func(t *testing.T) {
		q := captureTransition(t, shared.TransitionSpec{
			From:        auction.StatusDeadline,
			To:          auction.StatusEnded,
			Now:         now,
			EndedBefore: now,
			NoPending:   true,
			IDs:         []int64{3, 9},
		})

		assert.Contains(t, q.sql, "end_at <= $4")
		assert.Contains(t, q.sql, "NOT EXISTS (SELECT 1 FROM bid_requests br WHERE br.auction_id = auctions.id AND br.status = 'pending')")
		assert.Contains(t, q.sql, "id IN ($5,$6)")
		assert.NotContains(t, q.sql, "start_at")
		assert.NotContains(t, q.sql, "deposit_settled")
		assert.Equal(t, []any{"ENDED", now, "DEADLINE", now, int64(3), int64(9)}, q.args)
	})

	t.Run("an empty id filter never reaches the database", func(t *testing.T) {
		db := &recordingDBTX{err: errStop}
		moved, err := repository.NewTransitionRepository().Transition(context.Background(), db, shared.TransitionSpec{
			From: auction.StatusDeadline,
			To:   auction.StatusEnded,
			Now:  now,
			IDs:  []int64{},
		})
		require.NoError(t, err)
		assert.Empty(t, moved)
		assert.Empty(t, db.calls)
	})
}

func TestTransitionRepository_Candidates(t *testing.T) {
	now := builder.BaseTime
	db := &recordingDBTX{err: errStop}

	_, err := repository.NewTransitionRepository().Candidates(context.Background(), db, shared.TransitionSpec{
		From:        auction.StatusDeadline,
		To:          auction.StatusEnded,
		Now:         now,
		EndedBefore: now,
	})

	require.Error(t, err)
	require.Len(t, db.calls, 1)
	assert.Equal(t, "SELECT id FROM auctions WHERE (status = $1 AND end_at <= $2) ORDER BY id", db.calls[0].sql)
	assert.Equal(t, []any{"DEADLINE", now}, db.calls[0].args)
}
