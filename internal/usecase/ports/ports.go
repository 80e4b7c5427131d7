package ports

import (
	"context"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/coupon"
	"storefront-bff/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// Principal is the authenticated caller. APIToken is forwarded to the commerce API.
type Principal struct {
	UserID   string
	APIToken string
}

// CheckoutData is one checkout-data response
type CheckoutData struct {
	Cart     cart.Snapshot
	Book     address.Book
	Gateways []payment.Descriptor
}

type CashOrderResult struct {
	Success bool
	OrderID string
	Message string
}

// EncryptedCredentials carries paymentCreds as received. Absent fields are nil and must not be decrypted.
type EncryptedCredentials struct {
	PublishableKey *string
	ClientSecret   *string
	AccountID      *string
	RedirectURL    *string
	MerchantRef    *string
}

type CreatedOrder struct {
	OrderID     string
	Amount      decimal.Decimal
	Credentials EncryptedCredentials
}

type CartItem struct {
	ProductID string
	Quantity  int
	Variants  cart.VariantSelections
}

type CheckoutDataSource interface {
	FetchCheckoutData(ctx context.Context, token string) (*CheckoutData, error)
}

type ServiceabilityAPI interface {
	CheckServiceability(ctx context.Context, token, addressID string) (address.Serviceability, error)
}

type CouponAPI interface {
	ApplyCoupon(ctx context.Context, token string, code coupon.Code) (*coupon.Coupon, error)
}

type OrderAPI interface {
	PlaceCashOrder(ctx context.Context, token string, req checkout.SubmitRequest) (*CashOrderResult, error)
	CreateOrder(ctx context.Context, token string, req checkout.SubmitRequest) (*CreatedOrder, error)
}

type PaymentAPI interface {
	QueryPaymentStatus(ctx context.Context, token, orderID string, gateway payment.Gateway) (payment.Status, error)
	StorePaymentResponse(ctx context.Context, token string, record payment.Record) error
}

type CartAPI interface {
	AddToCart(ctx context.Context, token string, item CartItem) error
	ToggleWishlist(ctx context.Context, token, productID string) (bool, error)
}

// CommerceAPI is the whole remote backend as one client
type CommerceAPI interface {
	CheckoutDataSource
	ServiceabilityAPI
	CouponAPI
	OrderAPI
	PaymentAPI
	CartAPI
}

type RecordKind string

const (
	RecordFinal       RecordKind = "final"
	RecordProvisional RecordKind = "provisional"
)

// OutcomeLedger guards store-payment-response so each (order, kind) is recorded once
type OutcomeLedger interface {
	// Claim reports false when the slot was already taken
	Claim(ctx context.Context, orderID string, kind RecordKind, status payment.Status) (bool, error)
	Release(ctx context.Context, orderID string, kind RecordKind) error
}

type StatePersister interface {
	Load(ctx context.Context, userID, entity string) ([]byte, bool, error)
	Save(ctx context.Context, userID, entity string, data []byte) error
	Delete(ctx context.Context, userID, entity string) error
}
