package bootstrap

import (
	"log/slog"

	"storefront-bff/internal/infra/commerce"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/credcrypt"
	"storefront-bff/internal/usecase/ports"

	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(ports.CheckoutDataSource)),
			fx.As(new(ports.ServiceabilityAPI)),
			fx.As(new(ports.CouponAPI)),
			fx.As(new(ports.OrderAPI)),
			fx.As(new(ports.PaymentAPI)),
			fx.As(new(ports.CartAPI)),
		),
		NewDecrypter,
	),
)

func NewCommerceClient(cfg config.Config, logger *slog.Logger) *commerce.Client {
	return commerce.NewClient(cfg.Commerce, logger)
}

func NewDecrypter(cfg config.Config) (*credcrypt.Decrypter, error) {
	return credcrypt.NewDecrypter(cfg.Commerce.AppKey)
}
