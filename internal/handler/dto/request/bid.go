package request

import (
	"auction-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidRequest struct {
	RequestID uuid.UUID `json:"requestId" binding:"required"`
	Amount    string    `json:"amount" binding:"required,numeric"`
}

func (r PlaceBidRequest) ToInput(auctionID, bidderID int64) (commands.PlaceBidInput, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return commands.PlaceBidInput{}, err
	}
	return commands.PlaceBidInput{
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		RequestID: r.RequestID,
	}, nil
}
