package api

import (
	"context"
	"net/http"

	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultFailedListLimit = 50

type AdminHandler struct {
	rollback  commands.RollbackCommands
	lifecycle commands.LifecycleCommands
	reconcile commands.ReconcileCommands
}

func NewAdminHandler(rollback commands.RollbackCommands, lifecycle commands.LifecycleCommands, reconcile commands.ReconcileCommands) *AdminHandler {
	return &AdminHandler{rollback: rollback, lifecycle: lifecycle, reconcile: reconcile}
}

// RollbackUser undoes the live leads of a blocked user.
func (h *AdminHandler) RollbackUser(c *gin.Context) {
	userID, err := int64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	result, err := h.rollback.RollbackAuctionsForBlockedUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRollbackResult(result))
}

func (h *AdminHandler) Expose(c *gin.Context) {
	h.runTransition(c, h.lifecycle.Expose)
}

func (h *AdminHandler) MarkDeadline(c *gin.Context) {
	h.runTransition(c, h.lifecycle.MarkDeadline)
}

func (h *AdminHandler) End(c *gin.Context) {
	h.runTransition(c, h.lifecycle.End)
}

func (h *AdminHandler) runTransition(c *gin.Context, fn func(context.Context) ([]int64, error)) {
	ids, err := fn(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitioned(ids))
}

func (h *AdminHandler) ListFailedBidRequests(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultFailedListLimit)
	if err != nil || limit <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid limit"), "Invalid limit", nil)
		return
	}
	recs, err := h.reconcile.ListFailed(c.Request.Context(), int32(min(limit, 500)))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBidRequestRecords(recs))
}

func (h *AdminHandler) RetryBidRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}
	if err := h.reconcile.RetryFailed(c.Request.Context(), requestID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
