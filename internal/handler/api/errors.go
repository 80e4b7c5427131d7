package api

import (
	"net/http"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	transientMessage = "The service is busy right now. Please try again."
	rejectedMessage  = "The request could not be completed"
	paymentMessage   = "Payment failed"
)

type recoveryDetail struct {
	RecoveryAction string `json:"recovery_action"`
}

// abortWithUseCaseError maps the error taxonomy onto HTTP responses.
// A token refused by the commerce API sends the user back through sign-in.
func abortWithUseCaseError(c *gin.Context, auth *middleware.AuthMiddleware, err error) {
	if errs.Is(err, errs.ErrUnauthenticated) {
		auth.Challenge(c, err)
		return
	}
	httperr.Abort(c, err, classify(err))
}

func classify(err error) httperr.Response {
	var (
		verr       *checkout.ValidationError
		transition *checkout.InvalidTransitionError
	)

	switch {
	case errs.As(err, &verr):
		return httperr.NewResponse(http.StatusUnprocessableEntity, httperr.KindValidation, verr.Error()).WithField(verr.Field)
	case errs.Is(err, checkout.ErrValidation), errs.Is(err, payment.ErrMissingOrderID):
		return httperr.NewResponse(http.StatusUnprocessableEntity, httperr.KindValidation, errs.Cause(err).Error())
	case errs.Is(err, checkout.ErrEmptyCart):
		return httperr.NewResponse(http.StatusConflict, httperr.KindEmptyCart, "Your cart is empty").
			WithDetail(recoveryDetail{RecoveryAction: checkout.RecoveryBrowseCatalog})
	case errs.Is(err, checkout.ErrPaymentMethodUnavailable):
		return httperr.NewResponse(http.StatusConflict, httperr.KindRejected, "This payment method is not available")
	case errs.Is(err, checkout.ErrSubmissionInProgress):
		return httperr.NewResponse(http.StatusConflict, httperr.KindRejected, "Your order is already being placed")
	case errs.Is(err, checkout.ErrOrderMismatch):
		return httperr.NewResponse(http.StatusConflict, httperr.KindRejected, "This order does not belong to your checkout")
	case errs.Is(err, checkout.ErrNotRetryable), errs.As(err, &transition):
		return httperr.NewResponse(http.StatusConflict, httperr.KindRejected, "This action is not available right now")
	case errs.Is(err, usecase.ErrCheckoutNotStarted):
		return httperr.NewResponse(http.StatusConflict, httperr.KindRejected, "Checkout has not been started")
	case errs.Is(err, usecase.ErrPollNotFound):
		return httperr.NewResponse(http.StatusNotFound, httperr.KindNotFound, "No payment check is running for this order")
	case errs.Is(err, errs.ErrPaymentFailed):
		return httperr.NewResponse(http.StatusPaymentRequired, httperr.KindPayment, hintOr(err, paymentMessage))
	case errs.Is(err, errs.ErrRejected):
		return httperr.NewResponse(http.StatusUnprocessableEntity, httperr.KindRejected, hintOr(err, rejectedMessage))
	case errs.Is(err, errs.ErrTransient):
		return httperr.NewResponse(http.StatusServiceUnavailable, httperr.KindTransient, transientMessage)
	default:
		return httperr.NewResponse(http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
	}
}

func hintOr(err error, fallback string) string {
	if h := errs.Hint(err); h != "" {
		return h
	}
	return fallback
}
