package converter

import (
	"auction-engine/internal/domain/auction"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
)

func AuctionFromRow(row sqlc.Auctions) (*auction.Auction, error) {
	startPrice, err := pgconv.DecimalFromNumeric(row.StartPrice)
	if err != nil {
		return nil, err
	}
	currentPrice, err := pgconv.DecimalFromNumeric(row.CurrentPrice)
	if err != nil {
		return nil, err
	}

	return auction.Reconstruct(auction.Fields{
		ID:              row.ID,
		ItemID:          row.ItemID,
		SellerID:        row.SellerID,
		CategoryID:      pgconv.Int64PtrFromPgtype(row.CategoryID),
		StartPrice:      startPrice,
		CurrentPrice:    currentPrice,
		CurrentBidderID: pgconv.Int64PtrFromPgtype(row.CurrentBidderID),
		BidCount:        int(row.BidCount),
		Deposit:         pgconv.MustDecimal(row.Deposit),
		StartAt:         pgconv.TimePtrFromPgtype(row.StartAt),
		EndAt:           pgconv.TimeFromPgtype(row.EndAt),
		Extended:        row.IsExtended,
		ImminentMinutes: int(row.ImminentMinutes),
		Status:          auction.Status(row.Status),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func RestoreParams(plan auction.RollbackPlan) sqlc.RestoreAuctionStateParams {
	return sqlc.RestoreAuctionStateParams{
		ID:              plan.AuctionID,
		CurrentPrice:    pgconv.DecimalToNumeric(plan.RestoredPrice),
		CurrentBidderID: pgconv.Int64PtrToPgtype(plan.RestoredLeaderID),
		BidCount:        int32(plan.RestoredBidCount), // #nosec G115 -- bid counts are far below int32 range
	}
}
