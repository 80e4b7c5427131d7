//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/state"
	"storefront-bff/tests/common/builder"
	portsmock "storefront-bff/tests/mock/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalog(t *testing.T) (usecase.CatalogUseCase, *portsmock.MockCartAPI, *portsmock.MockStatePersister) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockCartAPI(ctrl)
	persister := portsmock.NewMockStatePersister(ctrl)
	persister.EXPECT().Load(gomock.Any(), testPrincipal.UserID, gomock.Any()).Return(nil, false, nil).AnyTimes()
	store := state.NewContainer(persister, discardLogger())
	return usecase.NewCatalogUseCase(api, store, discardLogger()), api, persister
}

func TestCatalogUseCase_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and persists the cart summary", func(t *testing.T) {
		uc, api, persister := newCatalog(t)
		item := ports.CartItem{ProductID: "prod-a", Quantity: 2}
		api.EXPECT().AddToCart(gomock.Any(), testToken, item).Return(nil)
		persister.EXPECT().Save(gomock.Any(), testPrincipal.UserID, "cart", []byte(`{"items":{"prod-a":2}}`)).Return(nil)
		persister.EXPECT().Save(gomock.Any(), testPrincipal.UserID, "wishlist", []byte(`[]`)).Return(nil)

		rm, err := uc.AddToCart(ctx, testPrincipal, item)
		require.NoError(t, err)
		assert.Equal(t, 2, rm.Cart.ItemCount)
		assert.Equal(t, []string{"prod-a"}, rm.Cart.Products)
		assert.Equal(t, []string{"Added to cart"}, rm.Notices)
	})

	t.Run("invalid quantity never reaches the backend", func(t *testing.T) {
		uc, _, _ := newCatalog(t)

		_, err := uc.AddToCart(ctx, testPrincipal, ports.CartItem{ProductID: "prod-a", Quantity: 0})
		assert.True(t, errs.Is(err, checkout.ErrValidation))
	})

	t.Run("backend failure leaves state untouched", func(t *testing.T) {
		uc, api, _ := newCatalog(t)
		api.EXPECT().AddToCart(gomock.Any(), testToken, gomock.Any()).Return(errs.Mark(assert.AnError, errs.ErrTransient))

		_, err := uc.AddToCart(ctx, testPrincipal, ports.CartItem{ProductID: "prod-a", Quantity: 1})
		assert.True(t, errs.Is(err, errs.ErrTransient))

		rm, err := uc.Store(ctx, testPrincipal)
		require.NoError(t, err)
		assert.Equal(t, 0, rm.Cart.ItemCount)
		assert.Empty(t, rm.Notices)
	})
}

func TestCatalogUseCase_ToggleWishlist(t *testing.T) {
	uc, api, persister := newCatalog(t)
	persister.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gomock.InOrder(
		api.EXPECT().ToggleWishlist(gomock.Any(), testToken, "prod-b").Return(true, nil),
		api.EXPECT().ToggleWishlist(gomock.Any(), testToken, "prod-b").Return(false, nil),
	)

	rm, err := uc.ToggleWishlist(context.Background(), testPrincipal, "prod-b")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-b"}, rm.Wishlist)

	rm, err = uc.ToggleWishlist(context.Background(), testPrincipal, "prod-b")
	require.NoError(t, err)
	assert.Empty(t, rm.Wishlist)
	assert.Equal(t, []string{"Saved to wishlist", "Removed from wishlist"}, rm.Notices)
}

func TestCouponEngine_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockCouponAPI(ctrl)
	engine := usecase.NewCouponEngine(api)

	_, err := engine.Apply(context.Background(), testToken, "", builder.SnapshotOf("10.00"))
	assert.True(t, errs.Is(err, checkout.ErrValidation))

	_, err = engine.Apply(context.Background(), testToken, "SAVE10", builder.SnapshotOf())
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}
