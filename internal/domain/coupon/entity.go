package coupon

import (
	"github.com/shopspring/decimal"
)

type Coupon struct {
	code          Code
	discount      Percent
	displayName   string
	applyQuantity int
	finalPrice    *decimal.Decimal
}

func NewCoupon(
	code string,
	discountPercent decimal.Decimal,
	displayName string,
	applyQuantity int,
	finalPrice *decimal.Decimal,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewPercent(discountPercent)
	if err != nil {
		return nil, err
	}

	if applyQuantity < 0 {
		return nil, ErrInvalidApplyQuantity
	}

	if displayName == "" {
		displayName = couponCode.String()
	}

	return &Coupon{
		code:          couponCode,
		discount:      discount,
		displayName:   displayName,
		applyQuantity: applyQuantity,
		finalPrice:    finalPrice,
	}, nil
}

func (c *Coupon) ApplyDiscount(amount decimal.Decimal) decimal.Decimal {
	return c.discount.Apply(amount)
}

func (c *Coupon) Code() Code                   { return c.code }
func (c *Coupon) Discount() Percent            { return c.discount }
func (c *Coupon) DisplayName() string          { return c.displayName }
func (c *Coupon) ApplyQuantity() int           { return c.applyQuantity }
func (c *Coupon) FinalPrice() *decimal.Decimal { return c.finalPrice }
