package api

import (
	"net/http"

	reqdto "storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves actions embedded in public pages. Each action is guarded inline.
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	guard          *usecase.AuthGuard
	auth           *middleware.AuthMiddleware
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, guard *usecase.AuthGuard, auth *middleware.AuthMiddleware) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		guard:          guard,
		auth:           auth,
	}
}

// errBadRequest carries a binding failure out of a guarded action
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

// @Summary Add to cart
// @Tags catalog
// @Accept json
// @Produce json
// @Param X-Return-Path header string false "Page the action was taken on"
// @Param request body reqdto.AddToCartRequest true "Item"
// @Success 200 {object} readmodel.StoreRM
// @Failure 401 {object} httperr.Response
// @Router /api/catalog/cart [post]
func (h *CatalogHandler) AddToCart(c *gin.Context) {
	h.guarded(c, func(p ports.Principal) (*readmodel.StoreRM, error) {
		var req reqdto.AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadRequest{err}
		}
		item, err := req.ToCartItem()
		if err != nil {
			return nil, err
		}
		return h.catalogUseCase.AddToCart(c.Request.Context(), p, item)
	})
}

// @Summary Toggle wishlist
// @Tags catalog
// @Accept json
// @Produce json
// @Param X-Return-Path header string false "Page the action was taken on"
// @Param request body reqdto.ToggleWishlistRequest true "Product"
// @Success 200 {object} readmodel.StoreRM
// @Failure 401 {object} httperr.Response
// @Router /api/catalog/wishlist [post]
func (h *CatalogHandler) ToggleWishlist(c *gin.Context) {
	h.guarded(c, func(p ports.Principal) (*readmodel.StoreRM, error) {
		var req reqdto.ToggleWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadRequest{err}
		}
		return h.catalogUseCase.ToggleWishlist(c.Request.Context(), p, req.ProductID)
	})
}

// @Summary Cart and wishlist summary
// @Tags catalog
// @Produce json
// @Success 200 {object} readmodel.StoreRM
// @Failure 401 {object} httperr.Response
// @Router /api/catalog/store [get]
func (h *CatalogHandler) Store(c *gin.Context) {
	h.guarded(c, func(p ports.Principal) (*readmodel.StoreRM, error) {
		return h.catalogUseCase.Store(c.Request.Context(), p)
	})
}

func (h *CatalogHandler) guarded(c *gin.Context, action func(ports.Principal) (*readmodel.StoreRM, error)) {
	var rm *readmodel.StoreRM
	d, err := h.guard.Guard(middleware.GetPrincipal(c), middleware.ReturnPath(c), func(p ports.Principal) error {
		var actionErr error
		rm, actionErr = action(p)
		return actionErr
	})
	if !d.Proceed {
		h.auth.Redirect(c, d, nil)
		return
	}

	var bad errBadRequest
	switch {
	case errs.As(err, &bad):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
	case err != nil:
		abortWithUseCaseError(c, h.auth, err)
	default:
		c.JSON(http.StatusOK, rm)
	}
}
