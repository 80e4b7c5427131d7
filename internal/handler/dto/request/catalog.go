package request

import (
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"

	"github.com/jinzhu/copier"
)

type AddToCartRequest struct {
	ProductID string            `json:"product_id" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required,min=1"`
	Variants  map[string]string `json:"variants,omitempty"`
}

func (r AddToCartRequest) ToCartItem() (ports.CartItem, error) {
	var item ports.CartItem
	if err := copier.Copy(&item, &r); err != nil {
		return ports.CartItem{}, errs.Wrap(err, "copy cart item")
	}
	return item, nil
}

type ToggleWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
