package api

import (
	"net/http"

	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	snapshots queries.SnapshotQueries
	ranking   queries.RankingQueries
	lifecycle commands.LifecycleCommands
}

func NewAuctionHandler(snapshots queries.SnapshotQueries, ranking queries.RankingQueries, lifecycle commands.LifecycleCommands) *AuctionHandler {
	return &AuctionHandler{snapshots: snapshots, ranking: ranking, lifecycle: lifecycle}
}

func (h *AuctionHandler) Snapshot(c *gin.Context) {
	auctionID, err := int64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction id", nil)
		return
	}
	snap, err := h.snapshots.GetSnapshot(c.Request.Context(), auctionID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

func (h *AuctionHandler) Ranking(c *gin.Context) {
	categoryID, err := optionalInt64Query(c, "categoryId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid categoryId", nil)
		return
	}
	limit, err := intQuery(c, "limit", queries.DefaultRankingLimit)
	if err != nil || limit <= 0 || limit > queries.MaxRankingLimit {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid limit"), "Invalid limit", nil)
		return
	}
	snaps, err := h.ranking.TopAuctions(c.Request.Context(), categoryID, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshots(snaps))
}

// Cancel withdraws the caller's own auction.
func (h *AuctionHandler) Cancel(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity"), "Unauthorized", nil)
		return
	}
	auctionID, err := int64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction id", nil)
		return
	}
	if err := h.lifecycle.Cancel(c.Request.Context(), auctionID, sellerID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
