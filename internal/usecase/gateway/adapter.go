package gateway

import (
	"context"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/errs"
)

// Adapter places an order through one gateway kind
type Adapter interface {
	Gateway() payment.Gateway
	Initiate(ctx context.Context, token string, req checkout.SubmitRequest) (payment.Outcome, error)
}

type Registry struct {
	adapters map[payment.Gateway]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[payment.Gateway]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Gateway()] = a
	}
	return r
}

// Get never falls back to another gateway
func (r *Registry) Get(g payment.Gateway) (Adapter, error) {
	a, ok := r.adapters[g]
	if !ok {
		return nil, errs.Mark(errs.Newf("no adapter for gateway %q", g), checkout.ErrPaymentMethodUnavailable)
	}
	return a, nil
}

func (r *Registry) Card() (*CardAdapter, error) {
	a, err := r.Get(payment.GatewayCard)
	if err != nil {
		return nil, err
	}
	card, ok := a.(*CardAdapter)
	if !ok {
		return nil, errs.Mark(errs.New("card gateway does not support handshakes"), checkout.ErrPaymentMethodUnavailable)
	}
	return card, nil
}
