//go:build unit

package address_test

import (
	"testing"

	"storefront-bff/internal/domain/address"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook(t *testing.T) {
	book, err := address.NewBook([]address.Address{
		{ID: "a1", Name: "Home", IsDefaultShipping: true},
		{ID: "a2", Name: "Office", IsDefaultBilling: true},
	})
	require.NoError(t, err)

	ship, ok := book.DefaultShipping()
	require.True(t, ok)
	assert.Equal(t, "a1", ship.ID)

	bill, ok := book.DefaultBilling()
	require.True(t, ok)
	assert.Equal(t, "a2", bill.ID)

	assert.True(t, book.Contains("a2"))
	assert.False(t, book.Contains("a3"))

	_, err = address.NewBook([]address.Address{{Name: "no id"}})
	assert.ErrorIs(t, err, address.ErrMissingID)
}

func TestServiceability(t *testing.T) {
	t.Run("serviceable needs a rule", func(t *testing.T) {
		_, err := address.NewServiceability("a1", true, decimal.NewFromInt(5), "")
		assert.ErrorIs(t, err, address.ErrMissingRule)
	})

	t.Run("unserviceable drops shipping data", func(t *testing.T) {
		s, err := address.NewServiceability("a1", false, decimal.NewFromInt(5), "express")
		require.NoError(t, err)
		assert.False(t, s.Serviceable())
		assert.True(t, s.ShippingCost().IsZero())
		assert.Empty(t, s.ShippingRule())
	})

	t.Run("applies only to its address", func(t *testing.T) {
		s, err := address.NewServiceability("a1", true, decimal.NewFromInt(5), "standard")
		require.NoError(t, err)
		assert.True(t, s.AppliesTo("a1"))
		assert.False(t, s.AppliesTo("a2"))
		assert.False(t, address.Serviceability{}.AppliesTo(""))
	})

	t.Run("negative cost", func(t *testing.T) {
		_, err := address.NewServiceability("a1", true, decimal.NewFromInt(-1), "standard")
		assert.ErrorIs(t, err, address.ErrNegativeCost)
	})
}
