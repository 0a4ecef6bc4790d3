package api

import (
	"log/slog"
	"net/http"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/wallet"
	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{errs.ErrLockContention, http.StatusTooManyRequests, "LOCK_CONTENTION", "Auction is busy, retry shortly"},
	{errs.ErrQueueUnavailable, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "Bid could not be accepted, retry shortly"},
	{errs.ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request"},
	{auction.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT", "Bid amount must be a positive whole number"},
	{wallet.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be positive"},
	{auction.ErrLowBid, http.StatusConflict, "LOW_BID", "Bid is below the minimum increment"},
	{auction.ErrContinuousBid, http.StatusConflict, "CONTINUOUS_BID", "Current leader cannot bid again"},
	{auction.ErrAuctionNotActive, http.StatusConflict, "AUCTION_NOT_ACTIVE", "Auction is not accepting bids"},
	{wallet.ErrInsufficientFunds, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS", "Insufficient available balance"},
	{errs.ErrAuctionNotFound, http.StatusNotFound, "AUCTION_NOT_FOUND", "Auction not found"},
	{errs.ErrWalletNotFound, http.StatusNotFound, "WALLET_NOT_FOUND", "Wallet not found"},
	{errs.ErrNotSeller, http.StatusForbidden, "NOT_SELLER", "Only the seller can cancel the auction"},
	{errs.ErrAuctionHasBids, http.StatusConflict, "AUCTION_HAS_BIDS", "Auction already has bids"},
	{errs.ErrNotCancellable, http.StatusConflict, "NOT_CANCELLABLE", "Auction cannot be cancelled in its current status"},
	{errs.ErrRollbackChanged, http.StatusConflict, "ROLLBACK_CHANGED", "Auction state changed, retry the rollback"},
	{commands.ErrBidRequestNotFailed, http.StatusConflict, "NOT_FAILED", "Bid request is not in failed state"},
}

// abortWithUseCaseError maps use case sentinels to HTTP statuses. Anything
// unmapped is a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	slog.ErrorContext(c.Request.Context(), "unhandled use case error", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithCode(c, http.StatusInternalServerError, "INTERNAL", err, "Internal error", nil)
}
