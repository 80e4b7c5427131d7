package usecase

import (
	"context"
	"log/slog"
	"sort"

	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"
	"storefront-bff/internal/usecase/state"
)

const (
	noticeAddedToCart  = "Added to cart"
	noticeWishlisted   = "Saved to wishlist"
	noticeUnwishlisted = "Removed from wishlist"
)

// CatalogUseCase backs the authenticated actions reachable from public catalog pages
type CatalogUseCase interface {
	AddToCart(ctx context.Context, p ports.Principal, item ports.CartItem) (*readmodel.StoreRM, error)
	ToggleWishlist(ctx context.Context, p ports.Principal, productID string) (*readmodel.StoreRM, error)
	Store(ctx context.Context, p ports.Principal) (*readmodel.StoreRM, error)
}

type catalogUseCaseImpl struct {
	api    ports.CartAPI
	store  *state.Container
	logger *slog.Logger
}

func NewCatalogUseCase(api ports.CartAPI, store *state.Container, logger *slog.Logger) CatalogUseCase {
	return &catalogUseCaseImpl{api: api, store: store, logger: logger}
}

func (u *catalogUseCaseImpl) AddToCart(ctx context.Context, p ports.Principal, item ports.CartItem) (*readmodel.StoreRM, error) {
	if item.ProductID == "" {
		return nil, errs.Mark(cart.ErrMissingProduct, checkout.ErrValidation)
	}
	if item.Quantity < 1 {
		return nil, errs.Mark(cart.ErrInvalidQuantity, checkout.ErrValidation)
	}

	if err := u.api.AddToCart(ctx, p.APIToken, item); err != nil {
		return nil, errs.Wrap(err, "add to cart")
	}

	s, err := u.store.Update(ctx, p.UserID, func(s *state.Store) {
		s.AddToCart(item.ProductID, item.Quantity)
		s.Notify(noticeAddedToCart)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "added to cart",
		slog.String("user_id", p.UserID),
		slog.String("product_id", item.ProductID),
		slog.Int("quantity", item.Quantity),
	)
	return toStoreRM(s), nil
}

func (u *catalogUseCaseImpl) ToggleWishlist(ctx context.Context, p ports.Principal, productID string) (*readmodel.StoreRM, error) {
	if productID == "" {
		return nil, errs.Mark(cart.ErrMissingProduct, checkout.ErrValidation)
	}

	on, err := u.api.ToggleWishlist(ctx, p.APIToken, productID)
	if err != nil {
		return nil, errs.Wrap(err, "toggle wishlist")
	}

	s, err := u.store.Update(ctx, p.UserID, func(s *state.Store) {
		s.SetWishlisted(productID, on)
		if on {
			s.Notify(noticeWishlisted)
		} else {
			s.Notify(noticeUnwishlisted)
		}
	})
	if err != nil {
		return nil, err
	}
	return toStoreRM(s), nil
}

func (u *catalogUseCaseImpl) Store(ctx context.Context, p ports.Principal) (*readmodel.StoreRM, error) {
	s, err := u.store.Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return toStoreRM(s), nil
}

func toStoreRM(s state.Store) *readmodel.StoreRM {
	products := make([]string, 0, len(s.Cart.Items))
	for id := range s.Cart.Items {
		products = append(products, id)
	}
	sort.Strings(products)

	wishlist := s.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	notices := s.Notices
	if notices == nil {
		notices = []string{}
	}
	return &readmodel.StoreRM{
		Cart:     readmodel.CartSummaryRM{ItemCount: s.Cart.Count(), Products: products},
		Wishlist: wishlist,
		Notices:  notices,
	}
}
