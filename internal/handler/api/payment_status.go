package api

import (
	"net/http"

	reqdto "storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentStatusHandler struct {
	paymentStatusUseCase usecase.PaymentStatusUseCase
	auth                 *middleware.AuthMiddleware
}

func NewPaymentStatusHandler(paymentStatusUseCase usecase.PaymentStatusUseCase, auth *middleware.AuthMiddleware) *PaymentStatusHandler {
	return &PaymentStatusHandler{
		paymentStatusUseCase: paymentStatusUseCase,
		auth:                 auth,
	}
}

// @Summary Watch payment status
// @Description Starts polling the payment status of an order, e.g. after returning from a wallet redirect
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body reqdto.WatchPaymentRequest true "Gateway"
// @Success 202 {object} readmodel.PaymentStatusRM
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{orderId}/payment-status [post]
func (h *PaymentStatusHandler) Watch(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		h.auth.Challenge(c, nil)
		return
	}

	var req reqdto.WatchPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.paymentStatusUseCase.Watch(c.Request.Context(), *p, c.Param("orderId"), req.Gateway)
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusAccepted, rm)
}

// @Summary Get payment status
// @Description Current status, attempt count and the time of the next automatic check
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} readmodel.PaymentStatusRM
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderId}/payment-status [get]
func (h *PaymentStatusHandler) Get(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		h.auth.Challenge(c, nil)
		return
	}

	rm, err := h.paymentStatusUseCase.Status(c.Request.Context(), *p, c.Param("orderId"))
	if err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.JSON(http.StatusOK, rm)
}

// @Summary Stop watching payment status
// @Tags payments
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderId}/payment-status [delete]
func (h *PaymentStatusHandler) Stop(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		h.auth.Challenge(c, nil)
		return
	}

	if err := h.paymentStatusUseCase.Stop(c.Request.Context(), *p, c.Param("orderId")); err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}
	c.Status(http.StatusNoContent)
}
