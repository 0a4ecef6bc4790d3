package repository

import (
	"context"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository/converter"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type AuctionQueries interface {
	GetAuctionByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Auctions, error)
	GetAuctionByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Auctions, error)
	ListAuctionsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Auctions, error)
	ListLiveAuctionIDs(ctx context.Context, db sqlc.DBTX) ([]int64, error)
	ListLiveAuctionIDsLedBy(ctx context.Context, db sqlc.DBTX, currentBidderID pgtype.Int8) ([]int64, error)
	GetAuctionCategoryID(ctx context.Context, db sqlc.DBTX, id int64) (pgtype.Int8, error)
	ApplyBidToAuction(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyBidToAuctionParams) (int64, error)
	RestoreAuctionState(ctx context.Context, db sqlc.DBTX, arg sqlc.RestoreAuctionStateParams) (int64, error)
	ExtendAuctionEnd(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendAuctionEndParams) (int64, error)
	CancelAuction(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type AuctionRepository struct {
	queries AuctionQueries
}

func NewAuctionRepository(queries AuctionQueries) *AuctionRepository {
	return &AuctionRepository{queries: queries}
}

func (r *AuctionRepository) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*auction.Auction, error) {
	row, err := r.queries.GetAuctionByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find auction", err)
	}
	return r.toEntity(row)
}

func (r *AuctionRepository) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (*auction.Auction, error) {
	row, err := r.queries.GetAuctionByIDForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock auction", err)
	}
	return r.toEntity(row)
}

func (r *AuctionRepository) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]*auction.Auction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListAuctionsByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions", err)
	}
	out := make([]*auction.Auction, 0, len(rows))
	for _, row := range rows {
		a, err := r.toEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AuctionRepository) ListLiveIDsLedBy(ctx context.Context, db sqlc.DBTX, userID int64) ([]int64, error) {
	ids, err := r.queries.ListLiveAuctionIDsLedBy(ctx, db, pgconv.Int64ToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions led by user", err)
	}
	return ids, nil
}

func (r *AuctionRepository) ListLiveIDs(ctx context.Context, db sqlc.DBTX) ([]int64, error) {
	ids, err := r.queries.ListLiveAuctionIDs(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live auctions", err)
	}
	return ids, nil
}

func (r *AuctionRepository) CategoryID(ctx context.Context, db sqlc.DBTX, id int64) (*int64, error) {
	category, err := r.queries.GetAuctionCategoryID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get auction category", err)
	}
	return pgconv.Int64PtrFromPgtype(category), nil
}

// ApplyBid folds an accepted bid into the auction row. The update keeps the
// highest price regardless of the order in which bids are reconciled.
func (r *AuctionRepository) ApplyBid(ctx context.Context, db sqlc.DBTX, auctionID, bidderID int64, amount decimal.Decimal) error {
	n, err := r.queries.ApplyBidToAuction(ctx, db, sqlc.ApplyBidToAuctionParams{
		ID:       auctionID,
		BidderID: bidderID,
		Amount:   pgconv.DecimalToNumeric(amount),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to apply bid to auction", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("auction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AuctionRepository) Restore(ctx context.Context, db sqlc.DBTX, plan auction.RollbackPlan) error {
	n, err := r.queries.RestoreAuctionState(ctx, db, converter.RestoreParams(plan))
	if err != nil {
		return infra.WrapRepoErr("failed to restore auction state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("auction not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExtendEnd moves end_at only while it still equals expectedEnd.
func (r *AuctionRepository) ExtendEnd(ctx context.Context, db sqlc.DBTX, id int64, expectedEnd, newEnd time.Time) (bool, error) {
	n, err := r.queries.ExtendAuctionEnd(ctx, db, sqlc.ExtendAuctionEndParams{
		ID:            id,
		ExpectedEndAt: pgconv.TimeToPgtype(expectedEnd),
		NewEndAt:      pgconv.TimeToPgtype(newEnd),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to extend auction", err)
	}
	return n > 0, nil
}

func (r *AuctionRepository) Cancel(ctx context.Context, db sqlc.DBTX, id int64) (bool, error) {
	n, err := r.queries.CancelAuction(ctx, db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel auction", err)
	}
	return n > 0, nil
}

func (r *AuctionRepository) toEntity(row sqlc.Auctions) (*auction.Auction, error) {
	a, err := converter.AuctionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert auction row", err, infra.KindDBFailure)
	}
	return a, nil
}
