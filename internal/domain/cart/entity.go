package cart

import (
	"github.com/shopspring/decimal"

	"storefront-bff/internal/pkg/patch"
)

type Line struct {
	productID  string
	quantity   int
	variants   VariantSelections
	unitPrice  decimal.Decimal
	offerPrice *decimal.Decimal
}

func NewLine(
	productID string,
	quantity int,
	selections VariantSelections,
	offered OfferedVariants,
	unitPrice decimal.Decimal,
	offerPrice *decimal.Decimal,
) (Line, error) {
	if productID == "" {
		return Line{}, ErrMissingProduct
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() || (offerPrice != nil && offerPrice.IsNegative()) {
		return Line{}, ErrNegativePrice
	}
	if err := offered.validate(selections); err != nil {
		return Line{}, err
	}

	return Line{
		productID:  productID,
		quantity:   quantity,
		variants:   selections.Clone(),
		unitPrice:  unitPrice,
		offerPrice: offerPrice,
	}, nil
}

// EffectivePrice is the offer price when one exists
func (l Line) EffectivePrice() decimal.Decimal {
	return patch.Coalesce(l.offerPrice, l.unitPrice)
}

func (l Line) Total() decimal.Decimal {
	return l.EffectivePrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l Line) ProductID() string            { return l.productID }
func (l Line) Quantity() int                { return l.quantity }
func (l Line) Variants() VariantSelections  { return l.variants.Clone() }
func (l Line) UnitPrice() decimal.Decimal   { return l.unitPrice }
func (l Line) OfferPrice() *decimal.Decimal { return l.offerPrice }

// Snapshot is a read-only view of the user's cart. It is replaced wholesale on re-fetch, never edited.
type Snapshot struct {
	lines []Line
}

func NewSnapshot(lines []Line) Snapshot {
	cp := make([]Line, len(lines))
	copy(cp, lines)
	return Snapshot{lines: cp}
}

func (s Snapshot) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (s Snapshot) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s Snapshot) ItemCount() int {
	n := 0
	for _, l := range s.lines {
		n += l.quantity
	}
	return n
}

func (s Snapshot) Lines() []Line {
	cp := make([]Line, len(s.lines))
	copy(cp, s.lines)
	return cp
}
