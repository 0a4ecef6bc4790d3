//go:build e2e

package auction_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-engine/internal/domain/user"
	"auction-engine/internal/handler/dto/request"
	"auction-engine/internal/handler/dto/response"
	"auction-engine/internal/infra/redisstore"
	"auction-engine/tests/common/authtest"
	"auction-engine/tests/common/dbtest"
	"auction-engine/tests/common/httptest"
	"auction-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bidsURL     = "/api/v1/auctions/%d/bids"
	snapshotURL = "/api/v1/auctions/%d/snapshot"
	walletURL   = "/api/v1/wallets/me"
	exposeURL   = "/api/v1/admin/scheduler/expose"

	sellerID int64 = 900
	adminID  int64 = 1
)

type AuctionSuite struct {
	e2e.SharedSuite
}

func (s *AuctionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuctionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuctionSuite))
}

func (s *AuctionSuite) token(userID int64, role user.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), userID, role)
}

func (s *AuctionSuite) runningAuction(startPrice int64) int64 {
	now := time.Now()
	started := now.Add(-time.Hour)
	return dbtest.CreateAuction(s.T(), s.DB, dbtest.AuctionRow{
		SellerID:   sellerID,
		StartPrice: startPrice,
		Status:     "RUNNING",
		StartAt:    &started,
		EndAt:      now.Add(time.Hour),
		CreatedAt:  now.Add(-2 * time.Hour),
	})
}

func (s *AuctionSuite) placeBid(auctionID, bidderID int64, requestID uuid.UUID, amount string) (int, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(bidsURL, auctionID),
		request.PlaceBidRequest{RequestID: requestID, Amount: amount}, s.token(bidderID, user.RoleMember))
	return w.Code, w.Body.String()
}

func (s *AuctionSuite) waitReconciled(n int) {
	s.T().Helper()
	require.Eventually(s.T(), func() bool {
		return dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bid_requests WHERE status = 'committed'") == n
	}, 10*time.Second, 50*time.Millisecond, "reconciliation did not catch up")
}

func (s *AuctionSuite) requireDurableWallet(userID int64, balance, locked int64) {
	s.T().Helper()
	gotBalance, gotLocked := dbtest.WalletBalances(s.T(), s.DB, userID)
	require.True(s.T(), decimal.NewFromInt(balance).Equal(gotBalance), "balance of %d: %s", userID, gotBalance)
	require.True(s.T(), decimal.NewFromInt(locked).Equal(gotLocked), "locked of %d: %s", userID, gotLocked)
}

// =============================================================================
// TestPlaceBid - fast-path acceptance and durable reconciliation
// =============================================================================

func (s *AuctionSuite) TestPlaceBid() {
	s.Run("Normal case: accepted bid is visible at once and reconciled later", func() {
		t := s.T()
		dbtest.CreateWallet(t, s.DB, 8, 10000, 0)
		auctionID := s.runningAuction(1000)

		code, body := s.placeBid(auctionID, 8, uuid.New(), "1100")
		require.Equal(t, http.StatusCreated, code, body)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(snapshotURL, auctionID), nil, "")
		var snap response.SnapshotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
		leader := int64(8)
		want := response.SnapshotResponse{
			AuctionID:       auctionID,
			CurrentPrice:    "1100",
			CurrentBidderID: &leader,
			BidCount:        1,
			ImminentMinutes: 3,
			Status:          "RUNNING",
		}
		if diff := cmp.Diff(want, snap, cmpopts.IgnoreFields(response.SnapshotResponse{}, "EndAt")); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, walletURL, nil, s.token(8, user.RoleMember))
		var wallet response.WalletResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &wallet)
		require.Equal(t, "8900", wallet.Balance)
		require.Equal(t, "1100", wallet.Locked)

		s.waitReconciled(1)
		s.requireDurableWallet(8, 8900, 1100)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM auctions WHERE id = $1 AND current_price = 1100 AND current_bidder_id = 8 AND bid_count = 1", auctionID))
	})

	s.Run("Normal case: outbid leader is refunded on both stores", func() {
		t := s.T()
		dbtest.CreateWallet(t, s.DB, 7, 10000, 0)
		dbtest.CreateWallet(t, s.DB, 8, 10000, 0)
		auctionID := s.runningAuction(1000)

		code, body := s.placeBid(auctionID, 7, uuid.New(), "1100")
		require.Equal(t, http.StatusCreated, code, body)
		code, body = s.placeBid(auctionID, 8, uuid.New(), "1210")
		require.Equal(t, http.StatusCreated, code, body)

		s.waitReconciled(2)
		s.requireDurableWallet(7, 10000, 0)
		s.requireDurableWallet(8, 8790, 1210)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM bids WHERE auction_id = $1", auctionID))
	})

	s.Run("Idempotency: a retried request id moves funds once", func() {
		t := s.T()
		dbtest.CreateWallet(t, s.DB, 8, 10000, 0)
		auctionID := s.runningAuction(1000)
		requestID := uuid.New()

		code, body := s.placeBid(auctionID, 8, requestID, "1100")
		require.Equal(t, http.StatusCreated, code, body)
		code, body = s.placeBid(auctionID, 8, requestID, "1100")
		require.Equal(t, http.StatusOK, code, body)
		require.Contains(t, body, `"duplicate":true`)

		s.waitReconciled(1)
		s.requireDurableWallet(8, 8900, 1100)
	})

	s.Run("Abnormal case: insufficient funds changes nothing", func() {
		t := s.T()
		dbtest.CreateWallet(t, s.DB, 8, 500, 0)
		auctionID := s.runningAuction(1000)

		code, body := s.placeBid(auctionID, 8, uuid.New(), "1100")
		require.Equal(t, http.StatusPaymentRequired, code, body)

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM bid_requests"))
		price, err := s.Redis.Get(context.Background(), redisstore.AuctionKey(auctionID, "currentPrice")).Result()
		require.NoError(t, err)
		require.Equal(t, "1000", price)
	})
}

// =============================================================================
// TestSnapshotRecovery - cold cache rebuilt from the durable row
// =============================================================================

func (s *AuctionSuite) TestSnapshotRecovery() {
	s.Run("Normal case: missing keys are rebuilt with a TTL", func() {
		t := s.T()
		auctionID := s.runningAuction(2000)
		ctx := context.Background()

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(snapshotURL, auctionID), nil, "")
			var snap response.SnapshotResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
			require.Equal(t, "2000", snap.CurrentPrice)
			require.Nil(t, snap.CurrentBidderID)

			ttl, err := s.Redis.TTL(ctx, redisstore.AuctionKey(auctionID, "status")).Result()
			require.NoError(t, err)
			require.Greater(t, ttl, time.Hour)

			require.NoError(t, s.Redis.Del(ctx, redisstore.AuctionKey(auctionID, "currentBidder")).Err())
		}
	})

	s.Run("Abnormal case: unknown auction is 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(snapshotURL, 999), nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "AUCTION_NOT_FOUND")
	})
}

// =============================================================================
// TestExpose - READY to RUNNING with the seller deposit returned once
// =============================================================================

func (s *AuctionSuite) TestExpose() {
	s.Run("Normal case: rerunning expose is a no-op", func() {
		t := s.T()
		now := time.Now()
		dbtest.CreateWallet(t, s.DB, sellerID, 0, 500)
		auctionID := dbtest.CreateAuction(t, s.DB, dbtest.AuctionRow{
			SellerID:   sellerID,
			StartPrice: 1000,
			Deposit:    500,
			Status:     "READY",
			EndAt:      now.Add(time.Hour),
			CreatedAt:  now.Add(-10 * time.Minute),
		})
		admin := s.token(adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exposeURL, nil, admin)
		var first response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Equal(t, []int64{auctionID}, first.AuctionIDs)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, exposeURL, nil, admin)
		var second response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Empty(t, second.AuctionIDs)

		s.requireDurableWallet(sellerID, 500, 0)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM wallet_transactions WHERE type = 'DEPOSIT_RETURN' AND auction_id = $1", auctionID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(snapshotURL, auctionID), nil, "")
		var snap response.SnapshotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &snap)
		require.Equal(t, "RUNNING", snap.Status)
	})

	s.Run("Abnormal case: members cannot drive the scheduler", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exposeURL, nil, s.token(8, user.RoleMember))
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
