//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/pkg/ptr"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"
	repositorymock "auction-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func acceptedEvent() shared.BidAccepted {
	return shared.BidAccepted{
		RequestID:        uuid.New(),
		AuctionID:        1,
		BidderID:         8,
		PreviousBidderID: ptr.Of(int64(7)),
		Amount:           decimal.NewFromInt(1100),
		PreviousAmount:   decimal.NewFromInt(1000),
		AcceptedAt:       builder.BaseTime,
	}
}

func TestBidRequestRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	ev := acceptedEvent()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectNew  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: first delivery", affected: 1, expectNew: true},
		{name: "success: redelivery is not new", affected: 0, expectNew: false},
		{
			name:       "error: unique violation",
			queryErr:   &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBidRequestQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().TryInsertBidRequest(ctx, mockDB, gomock.Cond(func(p sqlc.TryInsertBidRequestParams) bool {
				return p.RequestID == ev.RequestID && p.PreviousBidderID.Valid && p.PreviousBidderID.Int64 == 7
			})).Return(tc.affected, tc.queryErr)

			inserted, err := repository.NewBidRequestRepository(mockQueries).TryInsert(ctx, mockDB, ev)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectNew, inserted)
		})
	}
}

func TestBidRequestRepository_ListFailed(t *testing.T) {
	ctx := context.Background()
	ev := acceptedEvent()
	row := sqlc.BidRequests{
		RequestID:        ev.RequestID,
		AuctionID:        ev.AuctionID,
		BidderID:         ev.BidderID,
		Amount:           pgconv.DecimalToNumeric(ev.Amount),
		PreviousBidderID: pgconv.Int64PtrToPgtype(ev.PreviousBidderID),
		PreviousAmount:   pgconv.DecimalToNumeric(ev.PreviousAmount),
		Status:           string(shared.BidRequestFailed),
		Attempts:         3,
		LastError:        pgtype.Text{String: "serialization failure", Valid: true},
		AcceptedAt:       pgconv.TimeToPgtype(ev.AcceptedAt),
		UpdatedAt:        pgconv.TimeToPgtype(builder.BaseTime),
	}

	t.Run("success: rows keep the replayable event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBidRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListFailedBidRequests(ctx, mockDB, int32(10)).Return([]sqlc.BidRequests{row}, nil)

		recs, err := repository.NewBidRequestRepository(mockQueries).ListFailed(ctx, mockDB, 10)

		require.NoError(t, err)
		require.Len(t, recs, 1)
		got := recs[0]
		assert.Equal(t, shared.BidRequestFailed, got.Status)
		assert.Equal(t, 3, got.Attempts)
		assert.Equal(t, "serialization failure", *got.LastError)
		assert.Equal(t, ev.RequestID, got.Event.RequestID)
		assert.True(t, ev.Amount.Equal(got.Event.Amount))
		assert.True(t, ev.PreviousAmount.Equal(got.Event.PreviousAmount))
		assert.True(t, got.Event.HasPreviousBidder())
	})

	t.Run("error: unreadable amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBidRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		broken := row
		broken.Amount = pgtype.Numeric{}
		mockQueries.EXPECT().ListFailedBidRequests(ctx, mockDB, int32(10)).Return([]sqlc.BidRequests{broken}, nil)

		_, err := repository.NewBidRequestRepository(mockQueries).ListFailed(ctx, mockDB, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBidRequestRepository_StateChanges(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()

	t.Run("mark failed reports whether a pending row moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBidRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBidRequestRepository(mockQueries)

		mockQueries.EXPECT().MarkBidRequestFailed(ctx, mockDB, sqlc.MarkBidRequestFailedParams{
			RequestID: requestID,
			LastError: pgtype.Text{String: "gave up", Valid: true},
		}).Return(int64(1), nil)
		mockQueries.EXPECT().MarkBidRequestFailed(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		moved, err := repo.MarkFailed(ctx, mockDB, requestID, "gave up")
		require.NoError(t, err)
		assert.True(t, moved)

		moved, err = repo.MarkFailed(ctx, mockDB, requestID, "gave up")
		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("reset failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBidRequestQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ResetFailedBidRequest(ctx, mockDB, requestID).Return(int64(0), errors.New("timeout"))

		_, err := repository.NewBidRequestRepository(mockQueries).ResetFailed(ctx, mockDB, requestID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
