//go:build unit

package cart_test

import (
	"math/rand"
	"testing"

	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/pkg/patch"
	"storefront-bff/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LineBuilder)
	errIs  error
}

func TestLine(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLineBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "prod-1", actual.ProductID())
		assert.Equal(t, 1, actual.Quantity())
		assert.Equal(t, cart.VariantSelections{"size": "m"}, actual.Variants())
		assert.True(t, decimal.RequireFromString("50").Equal(actual.EffectivePrice()))
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.LineBuilder) { b.Quantity = 0 },
				errIs:  cart.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.LineBuilder) { b.Quantity = -2 },
				errIs:  cart.ErrInvalidQuantity,
			},
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.LineBuilder) { b.Quantity = 1 },
			},
		})
	})

	t.Run("variant validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "variant not offered",
				mutate: func(b *builder.LineBuilder) { b.Variants = cart.VariantSelections{"material": "wool"} },
				errIs:  cart.ErrUnknownVariant,
			},
			{
				name:   "item not offered for variant",
				mutate: func(b *builder.LineBuilder) { b.Variants = cart.VariantSelections{"size": "xxl"} },
				errIs:  cart.ErrUnknownItem,
			},
			{
				name:   "several variants",
				mutate: func(b *builder.LineBuilder) { b.Variants = cart.VariantSelections{"size": "s", "color": "blue"} },
			},
			{
				name:   "no variants",
				mutate: func(b *builder.LineBuilder) { b.Variants = nil },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative unit price",
				mutate: func(b *builder.LineBuilder) { b.WithPrice("-1", nil) },
				errIs:  cart.ErrNegativePrice,
			},
			{
				name:   "negative offer price",
				mutate: func(b *builder.LineBuilder) { b.WithPrice("10", patch.Ptr("-1")) },
				errIs:  cart.ErrNegativePrice,
			},
			{
				name:   "missing product",
				mutate: func(b *builder.LineBuilder) { b.ProductID = "" },
				errIs:  cart.ErrMissingProduct,
			},
		})
	})

	t.Run("selections are copied", func(t *testing.T) {
		b := builder.NewLineBuilder()
		line := b.MustBuild()
		b.Variants["size"] = "l"

		assert.Equal(t, "m", line.Variants()["size"])
	})
}

func TestSnapshotSubtotal(t *testing.T) {
	t.Run("offer price wins over unit price", func(t *testing.T) {
		lines := []cart.Line{
			builder.NewLineBuilder().WithPrice("40.00", patch.Ptr("30.00")).With(func(b *builder.LineBuilder) { b.Quantity = 2 }).MustBuild(),
			builder.NewLineBuilder().WithPrice("15.50", nil).With(func(b *builder.LineBuilder) { b.Quantity = 3 }).MustBuild(),
		}
		s := cart.NewSnapshot(lines)

		assert.Equal(t, "106.5", s.Subtotal().String())
		assert.Equal(t, 5, s.ItemCount())
	})

	t.Run("independent of line ordering", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		prices := []string{"0.10", "0.20", "19.99", "3.333", "1000.01", "7.07"}
		lines := make([]cart.Line, 0, len(prices))
		for i, p := range prices {
			qty := i + 1
			var offer *string
			if i%2 == 0 {
				offer = patch.Ptr("0.30")
			}
			lines = append(lines, builder.NewLineBuilder().WithPrice(p, offer).With(func(b *builder.LineBuilder) { b.Quantity = qty }).MustBuild())
		}
		want := cart.NewSnapshot(lines).Subtotal()

		for range 20 {
			shuffled := append([]cart.Line(nil), lines...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			got := cart.NewSnapshot(shuffled).Subtotal()
			assert.True(t, want.Equal(got), "want %s got %s", want, got)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		s := cart.NewSnapshot(nil)
		assert.True(t, s.IsEmpty())
		assert.True(t, s.Subtotal().IsZero())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewLineBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
