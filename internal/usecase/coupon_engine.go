package usecase

import (
	"context"
	"time"

	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/coupon"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
)

type CouponEngine struct {
	api ports.CouponAPI
}

func NewCouponEngine(api ports.CouponAPI) *CouponEngine {
	return &CouponEngine{api: api}
}

// Apply validates the code locally before any network call
func (e *CouponEngine) Apply(ctx context.Context, token, rawCode string, snapshot cart.Snapshot) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, checkout.ErrValidation)
	}
	if snapshot.IsEmpty() {
		return nil, checkout.ErrEmptyCart
	}

	c, err := e.api.ApplyCoupon(ctx, token, code)
	if err != nil {
		return nil, errs.Wrapf(err, "apply coupon %s", code)
	}
	return c, nil
}

// Remove drops the active coupon so totals revert to subtotal plus shipping
func (e *CouponEngine) Remove(s *checkout.Session, now time.Time) error {
	return s.RemoveCoupon(now)
}
