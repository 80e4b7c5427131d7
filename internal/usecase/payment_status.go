package usecase

import (
	"context"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"
)

type PaymentStatusUseCase interface {
	Watch(ctx context.Context, p ports.Principal, orderID, gatewayID string) (*readmodel.PaymentStatusRM, error)
	Status(ctx context.Context, p ports.Principal, orderID string) (*readmodel.PaymentStatusRM, error)
	Stop(ctx context.Context, p ports.Principal, orderID string) error
}

type paymentStatusUseCaseImpl struct {
	manager  *PollerManager
	resolver PaymentResolver
}

func NewPaymentStatusUseCase(manager *PollerManager, resolver PaymentResolver) PaymentStatusUseCase {
	return &paymentStatusUseCaseImpl{manager: manager, resolver: resolver}
}

// Watch starts polling when the user lands on the order status page, typically after a redirect.
// For an order placed by the user's checkout the gateway is taken from the checkout.
func (u *paymentStatusUseCaseImpl) Watch(ctx context.Context, p ports.Principal, orderID, gatewayID string) (*readmodel.PaymentStatusRM, error) {
	if orderID == "" {
		return nil, payment.ErrMissingOrderID
	}
	g, err := u.gatewayFor(p, orderID, gatewayID)
	if err != nil {
		return nil, err
	}

	userID := p.UserID
	snap := u.manager.Watch(p, orderID, g, func(orderID string, status payment.Status) {
		u.resolver.ResolvePayment(userID, orderID, status)
	})
	return toPaymentStatusRM(snap), nil
}

func (u *paymentStatusUseCaseImpl) gatewayFor(p ports.Principal, orderID, gatewayID string) (payment.Gateway, error) {
	if awaitedID, g, ok := u.resolver.AwaitedOrder(p.UserID); ok && awaitedID == orderID {
		if gatewayID != g.String() {
			return "", errs.Wrapf(checkout.ErrOrderMismatch, "order %s is paid with %s, not %q", orderID, g, gatewayID)
		}
		return g, nil
	}

	g, err := payment.ParseGateway(gatewayID)
	if err != nil {
		return "", errs.Mark(err, checkout.ErrPaymentMethodUnavailable)
	}
	if g == payment.GatewayCash {
		return "", errs.Mark(errs.New("cash orders settle immediately"), checkout.ErrPaymentMethodUnavailable)
	}
	return g, nil
}

func (u *paymentStatusUseCaseImpl) Status(ctx context.Context, p ports.Principal, orderID string) (*readmodel.PaymentStatusRM, error) {
	snap, err := u.manager.Snapshot(p.UserID, orderID)
	if err != nil {
		return nil, err
	}
	return toPaymentStatusRM(snap), nil
}

// Stop cancels polling when the user navigates away
func (u *paymentStatusUseCaseImpl) Stop(ctx context.Context, p ports.Principal, orderID string) error {
	return u.manager.Cancel(p.UserID, orderID)
}

func toPaymentStatusRM(s PollSnapshot) *readmodel.PaymentStatusRM {
	return &readmodel.PaymentStatusRM{
		OrderID:        s.OrderID,
		Gateway:        s.Gateway.String(),
		Status:         s.Status.String(),
		Attempt:        s.Attempt,
		NextCheckAt:    s.NextCheckAt,
		Checking:       s.Checking,
		Done:           s.Done,
		Recorded:       s.Recorded,
		Provisional:    s.Provisional,
		Error:          s.Err,
		RecoveryAction: s.RecoveryAction,
	}
}
