package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CartLineRM struct {
	ProductID  string            `json:"product_id"`
	Quantity   int               `json:"quantity"`
	Variants   map[string]string `json:"variants,omitempty"`
	UnitPrice  string            `json:"unit_price"`
	OfferPrice *string           `json:"offer_price,omitempty"`
	LineTotal  string            `json:"line_total"`
}

type AddressRM struct {
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

type GatewayRM struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type CouponRM struct {
	Code            string `json:"code"`
	DisplayName     string `json:"display_name"`
	DiscountPercent string `json:"discount_percent"`
	ApplyQuantity   int    `json:"apply_quantity"`
}

type TotalsRM struct {
	Subtotal        string `json:"subtotal"`
	ShippingCost    string `json:"shipping_cost"`
	DiscountPercent string `json:"discount_percent"`
	Total           string `json:"total"`
}

type OrderRM struct {
	ID      string `json:"id"`
	Gateway string `json:"gateway"`
	Amount  string `json:"amount"`
}

type ResultRM struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

type CheckoutRM struct {
	SessionID         uuid.UUID    `json:"session_id"`
	State             string       `json:"state"`
	Lines             []CartLineRM `json:"lines"`
	ItemCount         int          `json:"item_count"`
	Addresses         []AddressRM  `json:"addresses"`
	ShippingAddressID *string      `json:"shipping_address_id,omitempty"`
	BillingAddressID  *string      `json:"billing_address_id,omitempty"`
	Serviceability    string       `json:"serviceability"`
	ShippingRule      string       `json:"shipping_rule,omitempty"`
	Gateways          []GatewayRM  `json:"gateways"`
	GatewaySelectable bool         `json:"gateway_selectable"`
	SelectedGateway   *string      `json:"selected_gateway,omitempty"`
	Coupon            *CouponRM    `json:"coupon,omitempty"`
	Totals            TotalsRM     `json:"totals"`
	CanSubmit         bool         `json:"can_submit"`
	Order             *OrderRM     `json:"order,omitempty"`
	Result            *ResultRM    `json:"result,omitempty"`
	Notice            string       `json:"notice,omitempty"`
	RecoveryAction    string       `json:"recovery_action,omitempty"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type ContinuationRM struct {
	OrderID        string  `json:"order_id"`
	Amount         string  `json:"amount"`
	ClientSecret   string  `json:"client_secret"`
	PublishableKey string  `json:"publishable_key"`
	AccountID      *string `json:"account_id,omitempty"`
}

type RedirectRM struct {
	OrderID string `json:"order_id"`
	Amount  string `json:"amount"`
	URL     string `json:"url"`
}

// SubmitRM tells the caller how to continue after submission
type SubmitRM struct {
	Checkout     CheckoutRM      `json:"checkout"`
	Continuation *ContinuationRM `json:"continuation,omitempty"`
	Redirect     *RedirectRM     `json:"redirect,omitempty"`
}
