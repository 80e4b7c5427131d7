//go:build unit || e2e

package builder

import (
	"time"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	HomeAddressID   = "addr-home"
	OfficeAddressID = "addr-office"
	TestUserID      = "user-1"
)

type SessionBuilder struct {
	UserID       string
	Cart         cart.Snapshot
	Addresses    []address.Address
	Gateways     []payment.Descriptor
	Serviceable  bool
	ShippingCost string
	Gateway      *payment.Gateway
	Now          time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		UserID:       TestUserID,
		Cart:         SnapshotOf("100.00"),
		Addresses:    DefaultAddresses(),
		Gateways:     DefaultGateways(),
		Serviceable:  true,
		ShippingCost: "10.00",
		Now:          time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func DefaultAddresses() []address.Address {
	return []address.Address{
		{ID: HomeAddressID, Name: "Home", ZipCode: "100-0001", IsDefaultShipping: true, IsDefaultBilling: true},
		{ID: OfficeAddressID, Name: "Office", ZipCode: "150-0002"},
	}
}

func DefaultGateways() []payment.Descriptor {
	return []payment.Descriptor{
		{ID: payment.GatewayCash, Label: "Cash on delivery", Enabled: true},
		{ID: payment.GatewayCard, Label: "Card", Enabled: true},
		{ID: payment.GatewayWallet, Label: "Wallet", Enabled: true},
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithGateway(g payment.Gateway) *SessionBuilder {
	b.Gateway = &g
	return b
}

func (b *SessionBuilder) Book() address.Book {
	book, err := address.NewBook(b.Addresses)
	if err != nil {
		panic(err)
	}
	return book
}

func (b *SessionBuilder) ServiceabilityFor(addressID string) address.Serviceability {
	svc, err := address.NewServiceability(addressID, b.Serviceable, decimal.RequireFromString(b.ShippingCost), "standard")
	if err != nil {
		panic(err)
	}
	return svc
}

// BuildLoaded returns a session after Load, still validating its default address
func (b *SessionBuilder) BuildLoaded() *checkout.Session {
	s := checkout.NewSession(uuid.New(), b.UserID, b.Now)
	if _, err := s.Load(b.Cart, b.Book(), b.Gateways, b.Now); err != nil {
		panic(err)
	}
	return s
}

// BuildReady returns a session whose default shipping address has been checked
func (b *SessionBuilder) BuildReady() *checkout.Session {
	s := b.BuildLoaded()
	if id, gen, ok := s.ValidationTarget(); ok {
		s.ApplyServiceability(gen, b.ServiceabilityFor(id), b.Now)
	}
	if b.Gateway != nil {
		if err := s.SelectGateway(*b.Gateway, b.Now); err != nil {
			panic(err)
		}
	}
	return s
}

// Refresh mirrors the builder state as a pre-submit refresh
func (b *SessionBuilder) Refresh(addressID string) checkout.Refresh {
	return checkout.Refresh{
		Cart:           b.Cart,
		Book:           b.Book(),
		Gateways:       b.Gateways,
		Serviceability: b.ServiceabilityFor(addressID),
	}
}
