package converter

import (
	"auction-engine/internal/domain/auction"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/shared"
)

func BidFromRow(row sqlc.Bids) (auction.Bid, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return auction.Bid{}, err
	}
	return auction.Bid{
		ID:        row.ID,
		AuctionID: row.AuctionID,
		BidderID:  row.BidderID,
		Price:     price,
		RequestID: row.RequestID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func BidToCreateParams(b auction.Bid) sqlc.CreateBidParams {
	return sqlc.CreateBidParams{
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Price:     pgconv.DecimalToNumeric(b.Price),
		RequestID: b.RequestID,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func BidRequestToInsertParams(ev shared.BidAccepted) sqlc.TryInsertBidRequestParams {
	return sqlc.TryInsertBidRequestParams{
		RequestID:        ev.RequestID,
		AuctionID:        ev.AuctionID,
		BidderID:         ev.BidderID,
		Amount:           pgconv.DecimalToNumeric(ev.Amount),
		PreviousBidderID: pgconv.Int64PtrToPgtype(ev.PreviousBidderID),
		PreviousAmount:   pgconv.DecimalToNumeric(ev.PreviousAmount),
		AcceptedAt:       pgconv.TimeToPgtype(ev.AcceptedAt),
	}
}

func BidRequestFromRow(row sqlc.BidRequests) (*shared.BidRequestRecord, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return &shared.BidRequestRecord{
		Event: shared.BidAccepted{
			RequestID:        row.RequestID,
			AuctionID:        row.AuctionID,
			BidderID:         row.BidderID,
			PreviousBidderID: pgconv.Int64PtrFromPgtype(row.PreviousBidderID),
			Amount:           amount,
			PreviousAmount:   pgconv.MustDecimal(row.PreviousAmount),
			AcceptedAt:       pgconv.TimeFromPgtype(row.AcceptedAt),
		},
		Status:    shared.BidRequestStatus(row.Status),
		Attempts:  int(row.Attempts),
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
