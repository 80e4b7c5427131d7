package usecase

import (
	"context"
	"log/slog"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
)

// ServiceabilityChecker asks the backend whether an address can receive delivery.
// Results are never cached across addresses.
type ServiceabilityChecker struct {
	api    ports.ServiceabilityAPI
	logger *slog.Logger
}

func NewServiceabilityChecker(api ports.ServiceabilityAPI, logger *slog.Logger) *ServiceabilityChecker {
	return &ServiceabilityChecker{api: api, logger: logger}
}

func (c *ServiceabilityChecker) Check(ctx context.Context, token, addressID string) (address.Serviceability, error) {
	if addressID == "" {
		return address.Serviceability{}, checkout.ErrMissingShippingAddress
	}

	result, err := c.api.CheckServiceability(ctx, token, addressID)
	if err != nil {
		c.logger.WarnContext(ctx, "serviceability check failed",
			slog.String("address_id", addressID),
			slog.Any("error", err),
		)
		return address.Serviceability{}, errs.Wrap(err, "check serviceability")
	}
	if !result.AppliesTo(addressID) {
		return address.Serviceability{}, errs.Mark(
			errs.Newf("serviceability result for %q returned for %q", result.AddressID(), addressID),
			errs.ErrTransient,
		)
	}

	c.logger.DebugContext(ctx, "serviceability checked",
		slog.String("address_id", addressID),
		slog.Bool("serviceable", result.Serviceable()),
		slog.String("shipping_cost", result.ShippingCost().String()),
	)
	return result, nil
}
