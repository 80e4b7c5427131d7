package gateway

import (
	"context"
	"log/slog"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
)

type CashAdapter struct {
	orders ports.OrderAPI
	logger *slog.Logger
}

func NewCashAdapter(orders ports.OrderAPI, logger *slog.Logger) *CashAdapter {
	return &CashAdapter{orders: orders, logger: logger}
}

func (a *CashAdapter) Gateway() payment.Gateway {
	return payment.GatewayCash
}

// Initiate settles the order synchronously; no polling follows
func (a *CashAdapter) Initiate(ctx context.Context, token string, req checkout.SubmitRequest) (payment.Outcome, error) {
	res, err := a.orders.PlaceCashOrder(ctx, token, req)
	if err != nil {
		return nil, errs.Wrap(err, "place cash order")
	}
	if res.Success && res.OrderID == "" {
		return nil, errs.Mark(errs.New("cash order succeeded without order id"), errs.ErrTransient)
	}

	a.logger.InfoContext(ctx, "cash order placed",
		slog.String("order_id", res.OrderID),
		slog.Bool("success", res.Success),
	)
	return payment.Immediate{Order: res.OrderID, Success: res.Success, Message: res.Message}, nil
}
