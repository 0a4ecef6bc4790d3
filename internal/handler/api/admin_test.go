//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/domain/user"
	"auction-engine/internal/handler/api"
	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/ptr"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/shared"
	"auction-engine/tests/common/builder"
	"auction-engine/tests/common/httptest"
	commandsmock "auction-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockRollback  *commandsmock.MockRollbackCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockReconcile *commandsmock.MockReconcileCommands
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRollback = commandsmock.NewMockRollbackCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockReconcile = commandsmock.NewMockReconcileCommands(s.mockCtrl)
	h := api.NewAdminHandler(s.mockRollback, s.mockLifecycle, s.mockReconcile)

	admin := s.router.Group("/admin", fakeAuth(1, user.RoleAdmin))
	admin.POST("/users/:id/rollback", h.RollbackUser)
	admin.POST("/scheduler/expose", h.Expose)
	admin.POST("/scheduler/deadline", h.MarkDeadline)
	admin.POST("/scheduler/end", h.End)
	admin.GET("/bid-requests/failed", h.ListFailedBidRequests)
	admin.POST("/bid-requests/:requestId/retry", h.RetryBidRequest)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestRollbackUser() {
	s.Run("success: lists every restored auction", func() {
		s.mockRollback.EXPECT().RollbackAuctionsForBlockedUser(gomock.Any(), int64(11)).Return(&commands.RollbackResult{
			UserID: 11,
			Plans: []auction.RollbackPlan{{
				AuctionID:        1,
				BlockedUserID:    11,
				ReleasedAmount:   decimal.NewFromInt(2000),
				RestoredPrice:    decimal.NewFromInt(1500),
				RestoredLeaderID: ptr.Of(int64(12)),
				RestoredBidCount: 2,
			}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/11/rollback", nil, "bearer-token")

		var body resdto.RollbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Auctions, 1)
		got := body.Auctions[0]
		s.Equal("2000", got.ReleasedAmount)
		s.Equal("1500", got.RestoredPrice)
		s.Equal(2, got.RestoredBidCount)
		s.Equal(int64(12), *got.RestoredLeaderID)
	})

	s.Run("success: nothing to roll back is an empty list", func() {
		s.mockRollback.EXPECT().RollbackAuctionsForBlockedUser(gomock.Any(), int64(11)).
			Return(&commands.RollbackResult{UserID: 11}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/11/rollback", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"auctions":[]`)
	})

	s.Run("error: 409 Conflict when the auction moved on", func() {
		s.mockRollback.EXPECT().RollbackAuctionsForBlockedUser(gomock.Any(), int64(11)).
			Return(nil, errs.Wrap(errs.ErrRollbackChanged, "auction 1")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/11/rollback", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "ROLLBACK_CHANGED")
	})

	s.Run("error: 400 Bad Request for invalid user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users/x/rollback", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})
}

func (s *AdminHandlerTestSuite) TestTransitions() {
	s.Run("expose reports the moved auctions", func() {
		s.mockLifecycle.EXPECT().Expose(gomock.Any()).Return([]int64{1, 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/scheduler/expose", nil, "bearer-token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int64{1, 2}, body.AuctionIDs)
		s.Equal(2, body.Count)
	})

	s.Run("deadline with nothing to do", func() {
		s.mockLifecycle.EXPECT().MarkDeadline(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/scheduler/deadline", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"auctionIds":[]`)
	})

	s.Run("end failure is a 500", func() {
		s.mockLifecycle.EXPECT().End(gomock.Any()).Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/scheduler/end", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL")
	})
}

func (s *AdminHandlerTestSuite) TestFailedBidRequests() {
	requestID := uuid.New()

	s.Run("list caps the limit", func() {
		s.mockReconcile.EXPECT().ListFailed(gomock.Any(), int32(500)).Return([]*shared.BidRequestRecord{{
			Event: shared.BidAccepted{
				RequestID: requestID,
				AuctionID: 1,
				BidderID:  8,
				Amount:    decimal.NewFromInt(1100),
			},
			Attempts:  3,
			LastError: ptr.Of("wallet row locked"),
			UpdatedAt: builder.BaseTime,
		}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bid-requests/failed?limit=9000", nil, "bearer-token")

		var body []resdto.FailedBidRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(requestID, body[0].RequestID)
		s.Equal(3, body[0].Attempts)
		s.Equal("1100", body[0].Amount)
	})

	s.Run("retry accepted", func() {
		s.mockReconcile.EXPECT().RetryFailed(gomock.Any(), requestID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bid-requests/"+requestID.String()+"/retry", nil, "bearer-token")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("retry of a request that is not failed", func() {
		s.mockReconcile.EXPECT().RetryFailed(gomock.Any(), requestID).Return(commands.ErrBidRequestNotFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bid-requests/"+requestID.String()+"/retry", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "NOT_FAILED")
	})

	s.Run("retry with a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bid-requests/nope/retry", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request id")
	})
}
