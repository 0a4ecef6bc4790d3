package api

import (
	"net/http"

	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	funds commands.FundCommands
}

func NewWalletHandler(funds commands.FundCommands) *WalletHandler {
	return &WalletHandler{funds: funds}
}

// Me returns the caller's fast-path balances, warming them if needed.
func (h *WalletHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Unauthorized", nil)
		return
	}
	balance, err := h.funds.Balances(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletBalance(balance))
}
