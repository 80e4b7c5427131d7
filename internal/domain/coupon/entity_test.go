//go:build unit

package coupon_test

import (
	"testing"

	"storefront-bff/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  coupon.Code
		errIs error
	}{
		{name: "plain code", input: "SAVE20", want: "SAVE20"},
		{name: "trimmed", input: "  SAVE20 ", want: "SAVE20"},
		{name: "empty", input: "", errIs: coupon.ErrEmptyCouponCode},
		{name: "whitespace only", input: " \t\n", errIs: coupon.ErrEmptyCouponCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coupon.NewCouponCode(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCoupon(t *testing.T) {
	t.Run("percent bounds", func(t *testing.T) {
		for _, p := range []string{"-0.01", "100.01"} {
			_, err := coupon.NewCoupon("X", decimal.RequireFromString(p), "", 1, nil)
			require.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent, p)
		}
		for _, p := range []string{"0", "12.5", "100"} {
			_, err := coupon.NewCoupon("X", decimal.RequireFromString(p), "", 1, nil)
			require.NoError(t, err, p)
		}
	})

	t.Run("display name falls back to code", func(t *testing.T) {
		c, err := coupon.NewCoupon("WELCOME", decimal.NewFromInt(5), "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "WELCOME", c.DisplayName())
	})

	t.Run("negative apply quantity", func(t *testing.T) {
		_, err := coupon.NewCoupon("X", decimal.NewFromInt(5), "", -1, nil)
		require.ErrorIs(t, err, coupon.ErrInvalidApplyQuantity)
	})

	t.Run("apply keeps precision", func(t *testing.T) {
		c, err := coupon.NewCoupon("THIRD", decimal.RequireFromString("33.3333"), "", 1, nil)
		require.NoError(t, err)

		got := c.ApplyDiscount(decimal.RequireFromString("10"))
		assert.Equal(t, "6.666670", got.StringFixed(6))
		assert.Equal(t, "6.67", got.StringFixed(2))
	})
}
