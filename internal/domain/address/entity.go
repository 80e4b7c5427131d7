package address

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingID    = errors.New("address id is required")
	ErrNotInBook    = errors.New("address does not belong to the user")
	ErrMissingRule  = errors.New("shipping rule is required for a serviceable address")
	ErrNegativeCost = errors.New("shipping cost cannot be negative")
)

type Address struct {
	ID                string
	Name              string
	Phone             string
	Email             string
	Line1             string
	Line2             string
	CountryID         string
	StateID           string
	CityID            string
	ZipCode           string
	IsDefaultBilling  bool
	IsDefaultShipping bool
}

// Book is the user's address list as delivered by checkout-data
type Book struct {
	addresses []Address
}

func NewBook(addresses []Address) (Book, error) {
	for _, a := range addresses {
		if a.ID == "" {
			return Book{}, ErrMissingID
		}
	}
	cp := make([]Address, len(addresses))
	copy(cp, addresses)
	return Book{addresses: cp}, nil
}

func (b Book) Find(id string) (Address, bool) {
	for _, a := range b.addresses {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

func (b Book) Contains(id string) bool {
	_, ok := b.Find(id)
	return ok
}

func (b Book) DefaultShipping() (Address, bool) {
	for _, a := range b.addresses {
		if a.IsDefaultShipping {
			return a, true
		}
	}
	return Address{}, false
}

func (b Book) DefaultBilling() (Address, bool) {
	for _, a := range b.addresses {
		if a.IsDefaultBilling {
			return a, true
		}
	}
	return Address{}, false
}

func (b Book) All() []Address {
	cp := make([]Address, len(b.addresses))
	copy(cp, b.addresses)
	return cp
}

// Serviceability is computed for one address and is never reused for another
type Serviceability struct {
	addressID    string
	serviceable  bool
	shippingCost decimal.Decimal
	shippingRule string
}

func NewServiceability(addressID string, serviceable bool, cost decimal.Decimal, rule string) (Serviceability, error) {
	if addressID == "" {
		return Serviceability{}, ErrMissingID
	}
	if cost.IsNegative() {
		return Serviceability{}, ErrNegativeCost
	}
	if !serviceable {
		// an unserviceable destination carries no shipping charge
		return Serviceability{addressID: addressID}, nil
	}
	if rule == "" {
		return Serviceability{}, ErrMissingRule
	}
	return Serviceability{
		addressID:    addressID,
		serviceable:  true,
		shippingCost: cost,
		shippingRule: rule,
	}, nil
}

func (s Serviceability) AddressID() string             { return s.addressID }
func (s Serviceability) Serviceable() bool             { return s.serviceable }
func (s Serviceability) ShippingCost() decimal.Decimal { return s.shippingCost }
func (s Serviceability) ShippingRule() string          { return s.shippingRule }

// AppliesTo reports whether the result was computed for the given address
func (s Serviceability) AppliesTo(addressID string) bool {
	return s.addressID != "" && s.addressID == addressID
}
