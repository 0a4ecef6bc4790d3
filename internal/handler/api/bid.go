package api

import (
	"net/http"

	reqdto "auction-engine/internal/handler/dto/request"
	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	cmds commands.BidCommands
}

func NewBidHandler(cmds commands.BidCommands) *BidHandler {
	return &BidHandler{cmds: cmds}
}

// PlaceBid accepts a bid for the authenticated bidder. A retried request id
// that was already accepted answers 200 with duplicate set.
func (h *BidHandler) PlaceBid(c *gin.Context) {
	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Unauthorized", nil)
		return
	}
	auctionID, err := int64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction id", nil)
		return
	}
	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(auctionID, bidderID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	outcome, err := h.cmds.PlaceBid(c.Request.Context(), in)
	if err != nil {
		if errs.Is(err, errs.ErrDuplicateRequest) {
			c.JSON(http.StatusOK, resdto.DuplicateBidResponse{RequestID: in.RequestID, Duplicate: true})
			return
		}
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBidOutcome(outcome))
}
