package components

import (
	"storefront-bff/internal/handler"
	"storefront-bff/internal/handler/api"
	"storefront-bff/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewCatalogHandler,
		api.NewCheckoutHandler,
		api.NewPaymentStatusHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	session *api.SessionHandler,
	catalog *api.CatalogHandler,
	checkout *api.CheckoutHandler,
	paymentStatus *api.PaymentStatusHandler,
) handler.Handlers {
	return handler.Handlers{
		Session:       session,
		Catalog:       catalog,
		Checkout:      checkout,
		PaymentStatus: paymentStatus,
	}
}
