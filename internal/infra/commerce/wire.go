package commerce

import (
	"encoding/json"
	"net/url"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const gatewayEnabledStatus = 1

type cartProductWire struct {
	ProductID       string              `json:"product_id"`
	Quantity        int                 `json:"quantity"`
	Variants        map[string]string   `json:"variants"`
	UnitPrice       decimal.Decimal     `json:"unit_price"`
	OfferPrice      *decimal.Decimal    `json:"offer_price"`
	OfferedVariants map[string][]string `json:"offered_variants"`
}

type addressWire struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Line1             string `json:"line1"`
	Line2             string `json:"line2"`
	CountryID         string `json:"country_id"`
	StateID           string `json:"state_id"`
	CityID            string `json:"city_id"`
	ZipCode           string `json:"zip_code"`
	IsDefaultBilling  bool   `json:"is_default_billing"`
	IsDefaultShipping bool   `json:"is_default_shipping"`
}

type gatewayWire struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status int    `json:"status"`
}

type checkoutDataResponse struct {
	CartProducts      []cartProductWire `json:"cart_products"`
	Addresses         []addressWire     `json:"addresses"`
	AvailableGateways []gatewayWire     `json:"available_gateways"`
}

type pincodeCheckRequest struct {
	ShippingAddressID string `json:"shipping_address_id"`
}

type pincodeCheckResponse struct {
	Serviceable  bool            `json:"serviceable"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	ShippingRule string          `json:"shipping_rule"`
}

type couponResponse struct {
	Coupon struct {
		Code     string          `json:"code"`
		Discount decimal.Decimal `json:"discount"`
		Name     string          `json:"name"`
	} `json:"coupon"`
	FinalPrice *decimal.Decimal `json:"final_price"`
	ApplyQty   int              `json:"apply_qty"`
}

type orderRequest struct {
	ShippingAddressID string  `json:"shipping_address_id"`
	BillingAddressID  string  `json:"billing_address_id"`
	Gateway           string  `json:"gateway"`
	CouponCode        *string `json:"coupon_code,omitempty"`
	ShippingCost      string  `json:"shipping_cost"`
	ShippingRule      string  `json:"shipping_rule"`
	Total             string  `json:"total"`
}

type cashOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

type paymentCredsWire struct {
	PublishableKey *string `json:"publishable_key"`
	ClientSecret   *string `json:"client_secret"`
	AccountID      *string `json:"account_id"`
	RedirectURL    *string `json:"redirect_url"`
	MerchantRef    *string `json:"merchant_ref"`
}

type orderCreateResponse struct {
	Order        string           `json:"order"`
	Amount       decimal.Decimal  `json:"amount"`
	PaymentCreds paymentCredsWire `json:"payment_creds"`
}

type statusQueryRequest struct {
	OrderID string `json:"order_id"`
	Gateway string `json:"gateway"`
}

type statusQueryResponse struct {
	Status             string          `json:"status"`
	RawProviderPayload json.RawMessage `json:"raw_provider_payload"`
}

type storePaymentRequest struct {
	OrderID       string  `json:"order_id"`
	GatewayName   string  `json:"gateway_name"`
	PaymentStatus int     `json:"payment_status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type addToCartRequest struct {
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Variants  map[string]string `json:"variants,omitempty"`
}

type wishlistToggleRequest struct {
	ProductID string `json:"product_id"`
}

type wishlistToggleResponse struct {
	Wishlisted bool `json:"wishlisted"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (r checkoutDataResponse) toPort() (*ports.CheckoutData, error) {
	lines := make([]cart.Line, 0, len(r.CartProducts))
	for _, p := range r.CartProducts {
		l, err := cart.NewLine(
			p.ProductID,
			p.Quantity,
			cart.VariantSelections(p.Variants),
			cart.OfferedVariants(p.OfferedVariants),
			p.UnitPrice,
			p.OfferPrice,
		)
		if err != nil {
			return nil, errs.Wrapf(err, "cart product %q", p.ProductID)
		}
		lines = append(lines, l)
	}

	addrs := make([]address.Address, 0, len(r.Addresses))
	if len(r.Addresses) > 0 {
		if err := copier.Copy(&addrs, r.Addresses); err != nil {
			return nil, errs.Wrap(err, "copy addresses")
		}
	}
	book, err := address.NewBook(addrs)
	if err != nil {
		return nil, err
	}

	gateways := make([]payment.Descriptor, 0, len(r.AvailableGateways))
	for _, g := range r.AvailableGateways {
		id, err := payment.ParseGateway(g.ID)
		if err != nil {
			// gateways this client cannot drive are never offered
			continue
		}
		gateways = append(gateways, payment.Descriptor{ID: id, Label: g.Label, Enabled: g.Status == gatewayEnabledStatus})
	}

	return &ports.CheckoutData{Cart: cart.NewSnapshot(lines), Book: book, Gateways: gateways}, nil
}

func newOrderRequest(req checkout.SubmitRequest) orderRequest {
	return orderRequest{
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		Gateway:           req.Gateway.String(),
		CouponCode:        req.CouponCode,
		ShippingCost:      req.ShippingCost.String(),
		ShippingRule:      req.ShippingRule,
		Total:             req.Total.String(),
	}
}

func (o orderRequest) query() url.Values {
	q := url.Values{}
	q.Set("shipping_address_id", o.ShippingAddressID)
	q.Set("billing_address_id", o.BillingAddressID)
	q.Set("gateway", o.Gateway)
	if o.CouponCode != nil {
		q.Set("coupon_code", *o.CouponCode)
	}
	q.Set("shipping_cost", o.ShippingCost)
	q.Set("shipping_rule", o.ShippingRule)
	q.Set("total", o.Total)
	return q
}
