//go:build unit || e2e

package builder

import (
	"storefront-bff/internal/domain/cart"

	"github.com/shopspring/decimal"
)

type LineBuilder struct {
	ProductID  string
	Quantity   int
	Variants   cart.VariantSelections
	Offered    cart.OfferedVariants
	UnitPrice  decimal.Decimal
	OfferPrice *decimal.Decimal
}

func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		ProductID: "prod-1",
		Quantity:  1,
		Variants:  cart.VariantSelections{"size": "m"},
		Offered:   cart.OfferedVariants{"size": {"s", "m", "l"}, "color": {"red", "blue"}},
		UnitPrice: decimal.RequireFromString("50.00"),
	}
}

func (b *LineBuilder) With(mutate func(*LineBuilder)) *LineBuilder {
	mutate(b)
	return b
}

func (b *LineBuilder) WithPrice(unit string, offer *string) *LineBuilder {
	b.UnitPrice = decimal.RequireFromString(unit)
	b.OfferPrice = nil
	if offer != nil {
		o := decimal.RequireFromString(*offer)
		b.OfferPrice = &o
	}
	return b
}

func (b *LineBuilder) BuildDomain() (cart.Line, error) {
	return cart.NewLine(b.ProductID, b.Quantity, b.Variants, b.Offered, b.UnitPrice, b.OfferPrice)
}

func (b *LineBuilder) MustBuild() cart.Line {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}

// SnapshotOf builds a snapshot of single-quantity lines at the given unit prices
func SnapshotOf(prices ...string) cart.Snapshot {
	lines := make([]cart.Line, 0, len(prices))
	for i, p := range prices {
		lines = append(lines, NewLineBuilder().With(func(b *LineBuilder) {
			b.ProductID = "prod-" + string(rune('a'+i))
		}).WithPrice(p, nil).MustBuild())
	}
	return cart.NewSnapshot(lines)
}
