package response

import "auction-engine/internal/usecase/commands"

type WalletResponse struct {
	UserID  int64  `json:"userId"`
	Balance string `json:"balance"`
	Locked  string `json:"locked"`
}

func FromWalletBalance(b *commands.WalletBalance) *WalletResponse {
	return &WalletResponse{
		UserID:  b.UserID,
		Balance: b.Balance.String(),
		Locked:  b.Locked.String(),
	}
}
