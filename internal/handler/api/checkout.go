package api

import (
	"net/http"

	reqdto "storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/ports"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
	auth            *middleware.AuthMiddleware
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase, auth *middleware.AuthMiddleware) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		auth:            auth,
	}
}

// @Summary Open checkout
// @Description Load the cart, addresses and payment methods, or return the checkout in progress
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout [get]
func (h *CheckoutHandler) Open(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	rm, err := h.checkoutUseCase.Open(c.Request.Context(), p)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Select shipping address
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectAddressRequest true "Address"
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/shipping-address [put]
func (h *CheckoutHandler) SelectShippingAddress(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req reqdto.SelectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.checkoutUseCase.SelectShippingAddress(c.Request.Context(), p, req.AddressID)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Select billing address
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectAddressRequest true "Address"
// @Success 200 {object} readmodel.CheckoutRM
// @Router /api/checkout/billing-address [put]
func (h *CheckoutHandler) SelectBillingAddress(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req reqdto.SelectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.checkoutUseCase.SelectBillingAddress(c.Request.Context(), p, req.AddressID)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Select payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectGatewayRequest true "Gateway"
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/gateway [put]
func (h *CheckoutHandler) SelectGateway(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req reqdto.SelectGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.checkoutUseCase.SelectGateway(c.Request.Context(), p, req.Gateway)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Apply coupon
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Coupon"
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.checkoutUseCase.ApplyCoupon(c.Request.Context(), p, req.Code)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Remove coupon
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.CheckoutRM
// @Router /api/checkout/coupon [delete]
func (h *CheckoutHandler) RemoveCoupon(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	rm, err := h.checkoutUseCase.RemoveCoupon(c.Request.Context(), p)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Place order
// @Description Validates locally, refreshes cart and serviceability, then starts the selected payment method
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.SubmitRM
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	rm, err := h.checkoutUseCase.Submit(c.Request.Context(), p)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Complete card handshake
// @Description Records the card provider result and resolves the checkout
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.HandshakeRequest true "Handshake result"
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/handshake [post]
func (h *CheckoutHandler) CompleteHandshake(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req reqdto.HandshakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.checkoutUseCase.CompleteHandshake(c.Request.Context(), p, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Retry after a failed order
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.CheckoutRM
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/retry [post]
func (h *CheckoutHandler) Retry(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	rm, err := h.checkoutUseCase.Retry(c.Request.Context(), p)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Leave checkout
// @Tags checkout
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/checkout [delete]
func (h *CheckoutHandler) Leave(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	if err := h.checkoutUseCase.Leave(c.Request.Context(), p); err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) principal(c *gin.Context) (ports.Principal, bool) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		// RequireAuth runs first on these routes
		h.auth.Challenge(c, nil)
		return ports.Principal{}, false
	}
	return *p, true
}
