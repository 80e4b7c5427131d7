package components

import (
	"context"

	"storefront-bff/internal/pkg/clock"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/gateway"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseGatewayModule,
	usecaseCheckoutModule,
	usecasePaymentModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseGatewayModule = fx.Module("usecase/gateway",
	fx.Provide(
		gateway.NewRecorder,
		gateway.NewCashAdapter,
		gateway.NewCardAdapter,
		gateway.NewWalletAdapter,
		NewGatewayRegistry,
	),
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		usecase.NewCheckoutSessions,
		usecase.NewServiceabilityChecker,
		usecase.NewCouponEngine,
		fx.Annotate(
			usecase.NewCheckoutCoordinator,
			fx.As(new(usecase.CheckoutUseCase)),
			fx.As(new(usecase.PaymentResolver)),
		),
		usecase.NewCatalogUseCase,
	),
)

var usecasePaymentModule = fx.Module("usecase/payment",
	fx.Provide(
		usecase.NewPollerManager,
		usecase.NewPaymentStatusUseCase,
	),
	fx.Invoke(stopPollersOnShutdown),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewAuthGuard,
		usecase.NewSessionUseCase,
	),
)

// the registry only ever holds these three gateways
func NewGatewayRegistry(cash *gateway.CashAdapter, card *gateway.CardAdapter, wallet *gateway.WalletAdapter) *gateway.Registry {
	return gateway.NewRegistry(cash, card, wallet)
}

func stopPollersOnShutdown(lc fx.Lifecycle, manager *usecase.PollerManager) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			manager.StopAll()
			return nil
		},
	})
}
