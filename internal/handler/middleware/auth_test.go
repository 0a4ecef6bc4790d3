//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"auction-engine/internal/domain/user"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase"
	"auction-engine/tests/common/authtest"
	"auction-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(helper.Service(t)))

	router := gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "role": role})
	}
	router.GET("/me", auth.RequireAuth(), whoami)
	router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	router.GET("/role-only", auth.RequireRole(user.RoleAdmin), whoami)
	return router, helper
}

func TestRequireAuth(t *testing.T) {
	router, helper := newAuthRouter(t)

	t.Run("valid token sets the identity", func(t *testing.T) {
		token := helper.GenerateToken(t, 42, user.RoleMember)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body struct {
			UserID int64  `json:"userId"`
			Role   string `json:"role"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, int64(42), body.UserID)
		assert.Equal(t, "member", body.Role)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
		msg   string
	}{
		{name: "missing token", token: func(*testing.T) string { return "" }, msg: "Access token required"},
		{name: "garbage token", token: func(*testing.T) string { return "not.a.jwt" }, msg: "Invalid or expired token"},
		{name: "expired token", token: func(t *testing.T) string {
			return helper.CreateExpiredToken(t, 42, user.RoleMember)
		}, msg: "Invalid or expired token"},
		{name: "foreign secret", token: func(t *testing.T) string {
			other := config.NewTestConfig().JWT
			other.Secret = "someone-else"
			return authtest.NewJWTHelper(other).GenerateToken(t, 42, user.RoleMember)
		}, msg: "Invalid or expired token"},
		{name: "unknown role", token: func(t *testing.T) string {
			return helper.GenerateToken(t, 42, user.Role("seller"))
		}, msg: "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tt.token(t))
			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, tt.msg)
		})
	}
}

func TestRequireRole(t *testing.T) {
	router, helper := newAuthRouter(t)

	t.Run("admin passes", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, helper.GenerateToken(t, 1, user.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, helper.GenerateToken(t, 2, user.RoleMember))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("without RequireAuth in front", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/role-only", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
