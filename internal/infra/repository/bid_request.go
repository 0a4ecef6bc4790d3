package repository

import (
	"context"

	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository/converter"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BidRequestQueries interface {
	TryInsertBidRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertBidRequestParams) (int64, error)
	GetBidRequest(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (sqlc.BidRequests, error)
	MarkBidRequestCommitted(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (int64, error)
	RecordBidRequestAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordBidRequestAttemptParams) error
	MarkBidRequestFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBidRequestFailedParams) (int64, error)
	ResetFailedBidRequest(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (int64, error)
	ListFailedBidRequests(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.BidRequests, error)
	CountPendingBidRequestsByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) (int64, error)
}

// BidRequestRepository tracks reconciliation state per request id. It plays
// the role of the idempotency table for the durable side.
type BidRequestRepository struct {
	queries BidRequestQueries
}

func NewBidRequestRepository(queries BidRequestQueries) *BidRequestRepository {
	return &BidRequestRepository{queries: queries}
}

// TryInsert reports false when the request id is already recorded.
func (r *BidRequestRepository) TryInsert(ctx context.Context, db sqlc.DBTX, ev shared.BidAccepted) (bool, error) {
	n, err := r.queries.TryInsertBidRequest(ctx, db, converter.BidRequestToInsertParams(ev))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert bid request", err)
	}
	return n > 0, nil
}

func (r *BidRequestRepository) Get(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (*shared.BidRequestRecord, error) {
	row, err := r.queries.GetBidRequest(ctx, db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bid request", err)
	}
	rec, err := converter.BidRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bid request row", err, infra.KindDBFailure)
	}
	return rec, nil
}

func (r *BidRequestRepository) MarkCommitted(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkBidRequestCommitted(ctx, db, requestID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark bid request committed", err)
	}
	return n > 0, nil
}

func (r *BidRequestRepository) RecordAttempt(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID, lastErr string) error {
	err := r.queries.RecordBidRequestAttempt(ctx, db, sqlc.RecordBidRequestAttemptParams{
		RequestID: requestID,
		LastError: pgconv.StringToPgtype(lastErr),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record bid request attempt", err)
	}
	return nil
}

func (r *BidRequestRepository) MarkFailed(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID, lastErr string) (bool, error) {
	n, err := r.queries.MarkBidRequestFailed(ctx, db, sqlc.MarkBidRequestFailedParams{
		RequestID: requestID,
		LastError: pgconv.StringToPgtype(lastErr),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark bid request failed", err)
	}
	return n > 0, nil
}

func (r *BidRequestRepository) ResetFailed(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (bool, error) {
	n, err := r.queries.ResetFailedBidRequest(ctx, db, requestID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reset bid request", err)
	}
	return n > 0, nil
}

func (r *BidRequestRepository) ListFailed(ctx context.Context, db sqlc.DBTX, limit int32) ([]*shared.BidRequestRecord, error) {
	rows, err := r.queries.ListFailedBidRequests(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list failed bid requests", err)
	}
	out := make([]*shared.BidRequestRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.BidRequestFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bid request row", err, infra.KindDBFailure)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *BidRequestRepository) CountPendingByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) (int64, error) {
	n, err := r.queries.CountPendingBidRequestsByAuction(ctx, db, auctionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending bid requests", err)
	}
	return n, nil
}
