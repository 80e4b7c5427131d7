package cart

import (
	"errors"
	"maps"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrUnknownVariant  = errors.New("variant is not offered by the product")
	ErrUnknownItem     = errors.New("variant item is not offered by the variant")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrMissingProduct  = errors.New("product id is required")
)

// VariantSelections maps a variant id to the chosen variant item id
type VariantSelections map[string]string

func (v VariantSelections) Clone() VariantSelections {
	return maps.Clone(v)
}

// OfferedVariants maps a variant id to the item ids the product offers for it
type OfferedVariants map[string][]string

func (o OfferedVariants) validate(selections VariantSelections) error {
	for variantID, itemID := range selections {
		items, ok := o[variantID]
		if !ok {
			return ErrUnknownVariant
		}
		found := false
		for _, it := range items {
			if it == itemID {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownItem
		}
	}
	return nil
}
