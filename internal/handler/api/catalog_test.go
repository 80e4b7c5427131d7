//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-bff/internal/handler/api"
	reqdto "storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"
	"storefront-bff/tests/common/httptest"
	"storefront-bff/tests/common/testutil"
	usecasemock "storefront-bff/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *usecasemock.MockCatalogUseCase
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	auth, guard := newTestAuth(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCatalog, guard, auth)

	g := s.router.Group("/catalog", auth.OptionalAuth())
	g.GET("/store", s.handler.Store)
	g.POST("/cart", s.handler.AddToCart)
	g.POST("/wishlist", s.handler.ToggleWishlist)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func validAddToCart() reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{ProductID: "prod-1", Quantity: 2, Variants: map[string]string{"size": "m"}}
}

// ================================================================================
// TestAddToCart
// ================================================================================

func (s *CatalogHandlerTestSuite) TestAddToCart() {
	url := "/catalog/cart"
	reqBody := validAddToCart()

	s.Run("success: adds the item for a signed-in user", func() {
		s.mockCatalog.EXPECT().AddToCart(gomock.Any(), testPrincipal, ports.CartItem{
			ProductID: "prod-1",
			Quantity:  2,
			Variants:  map[string]string{"size": "m"},
		}).Return(&readmodel.StoreRM{Cart: readmodel.CartSummaryRM{ItemCount: 2, Products: []string{"prod-1"}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, validToken)

		var got readmodel.StoreRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(2, got.Cart.ItemCount)
	})

	s.Run("error: anonymous user is redirected back to the product page", func() {
		// the action must not run
		s.mockCatalog.EXPECT().AddToCart(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		body := decodeError(s.T(), rec)
		s.Equal("/catalog/cart", body.Detail["return_path"])
	})

	s.Run("error: return path header names the originating page", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{middleware.ReturnPathHeader: "/products/prod-1?size=m"})

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("/signin?return_to=%2Fproducts%2Fprod-1%3Fsize%3Dm", rec.Header().Get("Location"))
	})

	s.Run("error: anonymous user with a malformed body still gets the sign-in redirect", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, validToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: commerce rejection is surfaced", func() {
		rejected := errs.WithHint(errs.Mark(errs.New("out of stock"), errs.ErrRejected), "This product is out of stock")
		s.mockCatalog.EXPECT().AddToCart(gomock.Any(), testPrincipal, gomock.Any()).Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "out of stock")
	})
}

// ================================================================================
// TestToggleWishlistAndStore
// ================================================================================

func (s *CatalogHandlerTestSuite) TestToggleWishlistAndStore() {
	s.Run("success: toggles the wishlist", func() {
		s.mockCatalog.EXPECT().ToggleWishlist(gomock.Any(), testPrincipal, "prod-7").
			Return(&readmodel.StoreRM{Wishlist: []string{"prod-7"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/catalog/wishlist",
			reqdto.ToggleWishlistRequest{ProductID: "prod-7"}, validToken)

		var got readmodel.StoreRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal([]string{"prod-7"}, got.Wishlist)
	})

	s.Run("error: anonymous wishlist toggle is redirected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/catalog/wishlist",
			reqdto.ToggleWishlistRequest{ProductID: "prod-7"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("success: store summary", func() {
		s.mockCatalog.EXPECT().Store(gomock.Any(), testPrincipal).
			Return(&readmodel.StoreRM{Cart: readmodel.CartSummaryRM{ItemCount: 1}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/store", nil, validToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
