package usecase

import (
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

func toCheckoutRM(s *checkout.Session) readmodel.CheckoutRM {
	rm := readmodel.CheckoutRM{
		SessionID:         s.ID(),
		State:             s.State().String(),
		ItemCount:         s.Cart().ItemCount(),
		Serviceability:    string(s.ServiceabilityStatus()),
		GatewaySelectable: s.GatewaySelectable(),
		CanSubmit:         s.Validate() == nil,
		Notice:            s.Notice(),
		UpdatedAt:         s.UpdatedAt(),
		Lines:             []readmodel.CartLineRM{},
		Addresses:         []readmodel.AddressRM{},
		Gateways:          []readmodel.GatewayRM{},
	}

	for _, l := range s.Cart().Lines() {
		line := readmodel.CartLineRM{
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
			Variants:  l.Variants(),
			UnitPrice: l.UnitPrice().StringFixed(2),
			LineTotal: l.Total().StringFixed(2),
		}
		if op := l.OfferPrice(); op != nil {
			v := op.StringFixed(2)
			line.OfferPrice = &v
		}
		rm.Lines = append(rm.Lines, line)
	}

	_ = copier.Copy(&rm.Addresses, s.Book().All())

	if id := s.ShippingAddressID(); id != "" {
		rm.ShippingAddressID = &id
		billing := s.BillingAddressID()
		rm.BillingAddressID = &billing
	}
	if svc := s.Serviceability(); svc != nil && svc.Serviceable() {
		rm.ShippingRule = svc.ShippingRule()
	}

	for _, d := range s.Gateways() {
		rm.Gateways = append(rm.Gateways, readmodel.GatewayRM{ID: d.ID.String(), Label: d.Label})
	}
	if g := s.Gateway(); g != nil {
		id := g.String()
		rm.SelectedGateway = &id
	}

	if c := s.Coupon(); c != nil {
		rm.Coupon = &readmodel.CouponRM{
			Code:            c.Code().String(),
			DisplayName:     c.DisplayName(),
			DiscountPercent: c.Discount().Value().String(),
			ApplyQuantity:   c.ApplyQuantity(),
		}
	}

	totals := s.Totals()
	subtotal, shipping, total := totals.Display()
	rm.Totals = readmodel.TotalsRM{
		Subtotal:        subtotal,
		ShippingCost:    shipping,
		DiscountPercent: totals.DiscountPercent.String(),
		Total:           total,
	}

	if o := s.Order(); o != nil {
		rm.Order = &readmodel.OrderRM{ID: o.ID, Gateway: o.Gateway.String(), Amount: o.Amount.StringFixed(2)}
	}
	if r := s.Result(); r != nil {
		rm.Result = &readmodel.ResultRM{Success: r.Success, OrderID: r.OrderID, Message: r.Message}
	}
	if s.State() == checkout.StateEmptyCart {
		rm.RecoveryAction = checkout.RecoveryBrowseCatalog
	}
	return rm
}
