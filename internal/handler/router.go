package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-bff/internal/handler/api"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session       *api.SessionHandler
	Catalog       *api.CatalogHandler
	Checkout      *api.CheckoutHandler
	PaymentStatus *api.PaymentStatusHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		session := apiGroup.Group("/session")
		{
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Session.Create},
				{Method: http.MethodDelete, Path: "", Handler: h.Session.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		// public pages; each action runs the guard itself
		catalog := apiGroup.Group("/catalog")
		catalog.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/store", Handler: h.Catalog.Store},
				{Method: http.MethodPost, Path: "/cart", Handler: h.Catalog.AddToCart},
				{Method: http.MethodPost, Path: "/wishlist", Handler: h.Catalog.ToggleWishlist},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Checkout.Open},
				{Method: http.MethodDelete, Path: "", Handler: h.Checkout.Leave},
				{Method: http.MethodPut, Path: "/shipping-address", Handler: h.Checkout.SelectShippingAddress},
				{Method: http.MethodPut, Path: "/billing-address", Handler: h.Checkout.SelectBillingAddress},
				{Method: http.MethodPut, Path: "/gateway", Handler: h.Checkout.SelectGateway},
				{Method: http.MethodPost, Path: "/coupon", Handler: h.Checkout.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/coupon", Handler: h.Checkout.RemoveCoupon},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Checkout.Submit},
				{Method: http.MethodPost, Path: "/handshake", Handler: h.Checkout.CompleteHandshake},
				{Method: http.MethodPost, Path: "/retry", Handler: h.Checkout.Retry},
			})
		}

		paymentStatus := apiGroup.Group("/orders/:orderId/payment-status")
		paymentStatus.Use(authMiddleware.RequireAuth())
		{
			addRoutes(paymentStatus, []route{
				{Method: http.MethodPost, Path: "", Handler: h.PaymentStatus.Watch},
				{Method: http.MethodGet, Path: "", Handler: h.PaymentStatus.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.PaymentStatus.Stop},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
