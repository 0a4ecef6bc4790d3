package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"auction-engine/internal/domain/user"
	"auction-engine/internal/handler/api"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Bids           *api.BidHandler
	Auctions       *api.AuctionHandler
	Wallets        *api.WalletHandler
	Admin          *api.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	p.Engine.GET("/health", healthCheck)

	v1 := p.Engine.Group("/api/v1")
	{
		auctions := v1.Group("/auctions")
		addRoutes(auctions, []route{
			{Method: http.MethodGet, Path: "/ranking", Handler: p.Auctions.Ranking},
			{Method: http.MethodGet, Path: "/:id/snapshot", Handler: p.Auctions.Snapshot},
		})

		authed := auctions.Group("")
		authed.Use(p.AuthMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/:id/bids", Handler: p.Bids.PlaceBid},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Auctions.Cancel},
		})

		wallets := v1.Group("/wallets")
		wallets.Use(p.AuthMiddleware.RequireAuth())
		addRoutes(wallets, []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.Wallets.Me},
		})

		admin := v1.Group("/admin")
		admin.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/users/:id/rollback", Handler: p.Admin.RollbackUser},
			{Method: http.MethodPost, Path: "/scheduler/expose", Handler: p.Admin.Expose},
			{Method: http.MethodPost, Path: "/scheduler/deadline", Handler: p.Admin.MarkDeadline},
			{Method: http.MethodPost, Path: "/scheduler/end", Handler: p.Admin.End},
			{Method: http.MethodGet, Path: "/bid-requests/failed", Handler: p.Admin.ListFailedBidRequests},
			{Method: http.MethodPost, Path: "/bid-requests/:requestId/retry", Handler: p.Admin.RetryBidRequest},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
