package middleware

import (
	"log/slog"
	"slices"

	"storefront-bff/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the UI reads from sign-in redirects and error reports
var requiredExposeHeaders = []string{"Location", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, ReturnPathHeader) {
		allowHeaders = append(allowHeaders, ReturnPathHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
