package repository

import (
	"context"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository/converter"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BidQueries interface {
	CreateBid(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBidParams) (sqlc.Bids, error)
	ListBidsByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) ([]sqlc.Bids, error)
	DeleteBidsByAuctionAndBidder(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBidsByAuctionAndBidderParams) (int64, error)
	GetMaxBidPriceByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) (pgtype.Numeric, error)
}

type BidRepository struct {
	queries BidQueries
}

func NewBidRepository(queries BidQueries) *BidRepository {
	return &BidRepository{queries: queries}
}

func (r *BidRepository) Create(ctx context.Context, db sqlc.DBTX, bid auction.Bid) (int64, error) {
	row, err := r.queries.CreateBid(ctx, db, converter.BidToCreateParams(bid))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create bid", err)
	}
	return row.ID, nil
}

// ListByAuction returns bids in acceptance order.
func (r *BidRepository) ListByAuction(ctx context.Context, db sqlc.DBTX, auctionID int64) ([]auction.Bid, error) {
	rows, err := r.queries.ListBidsByAuction(ctx, db, auctionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	bids := make([]auction.Bid, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BidFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bid row", err, infra.KindDBFailure)
		}
		bids = append(bids, b)
	}
	auction.SortByCreation(bids)
	return bids, nil
}

func (r *BidRepository) DeleteByAuctionAndBidder(ctx context.Context, db sqlc.DBTX, auctionID, bidderID int64) (int64, error) {
	n, err := r.queries.DeleteBidsByAuctionAndBidder(ctx, db, sqlc.DeleteBidsByAuctionAndBidderParams{
		AuctionID: auctionID,
		BidderID:  bidderID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bids", err)
	}
	return n, nil
}

func (r *BidRepository) MaxPrice(ctx context.Context, db sqlc.DBTX, auctionID int64) (decimal.Decimal, error) {
	n, err := r.queries.GetMaxBidPriceByAuction(ctx, db, auctionID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to get max bid price", err)
	}
	return pgconv.MustDecimal(n), nil
}
