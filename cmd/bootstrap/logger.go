package bootstrap

import (
	"log/slog"

	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
