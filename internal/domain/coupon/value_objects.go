package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCouponCode        = errors.New("coupon code cannot be empty")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidApplyQuantity   = errors.New("apply quantity cannot be negative")
)

var hundred = decimal.NewFromInt(100)

type Code string

// NewCouponCode trims the input. Codes are case-sensitive on the backend and are sent as typed.
func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Code(""), ErrEmptyCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Percent struct {
	value decimal.Decimal
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percent{}, ErrInvalidDiscountPercent
	}
	return Percent{value: value}, nil
}

func (p Percent) Value() decimal.Decimal {
	return p.value
}

// Factor is the multiplier left after the discount, 1 - p/100
func (p Percent) Factor() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(p.value.Div(hundred))
}

// Apply keeps full precision. Rounding happens at display time only.
func (p Percent) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.Factor())
}
