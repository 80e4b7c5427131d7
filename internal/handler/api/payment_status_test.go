//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/handler/api"
	reqdto "storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/readmodel"
	"storefront-bff/tests/common/httptest"
	usecasemock "storefront-bff/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentStatusHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockStatus *usecasemock.MockPaymentStatusUseCase
	handler    *api.PaymentStatusHandler
}

func (s *PaymentStatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStatus = usecasemock.NewMockPaymentStatusUseCase(s.mockCtrl)
	auth, _ := newTestAuth(s.mockCtrl)
	s.handler = api.NewPaymentStatusHandler(s.mockStatus, auth)

	g := s.router.Group("/orders/:orderId/payment-status", auth.RequireAuth())
	g.POST("", s.handler.Watch)
	g.GET("", s.handler.Get)
	g.DELETE("", s.handler.Stop)
}

func (s *PaymentStatusHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentStatusHandlerTestSuite))
}

func (s *PaymentStatusHandlerTestSuite) TestWatch() {
	url := "/orders/order-1/payment-status"

	s.Run("success: 202 Accepted with the first check scheduled", func() {
		next := time.Date(2026, 1, 1, 12, 0, 3, 0, time.UTC)
		s.mockStatus.EXPECT().Watch(gomock.Any(), testPrincipal, "order-1", "wallet").
			Return(&readmodel.PaymentStatusRM{OrderID: "order-1", Gateway: "wallet", Status: "pending", NextCheckAt: &next}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.WatchPaymentRequest{Gateway: "wallet"}, validToken)

		var got readmodel.PaymentStatusRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &got)
		s.Equal("pending", got.Status)
		s.Require().NotNil(got.NextCheckAt)
		s.True(next.Equal(*got.NextCheckAt))
	})

	s.Run("error: 400 without a gateway", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: cash orders have nothing to poll", func() {
		rejected := errs.WithHint(errs.Mark(errs.New("cash orders are not polled"), errs.ErrRejected), "Cash orders are confirmed on delivery")
		s.mockStatus.EXPECT().Watch(gomock.Any(), testPrincipal, "order-1", "cash").Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.WatchPaymentRequest{Gateway: "cash"}, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "confirmed on delivery")
	})

	s.Run("error: 409 when the gateway does not match the placed order", func() {
		s.mockStatus.EXPECT().Watch(gomock.Any(), testPrincipal, "order-1", "card").
			Return(nil, errs.Wrap(checkout.ErrOrderMismatch, "gateway")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.WatchPaymentRequest{Gateway: "card"}, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "does not belong")
	})

	s.Run("success: failed record asks for a new watch", func() {
		s.mockStatus.EXPECT().Status(gomock.Any(), testPrincipal, "order-1").
			Return(&readmodel.PaymentStatusRM{OrderID: "order-1", Status: "success", Done: true, Error: "payment outcome could not be recorded", RecoveryAction: usecase.RecoveryRetryWatch}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, validToken)

		var got readmodel.PaymentStatusRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("retry_watch", got.RecoveryAction)
		s.False(got.Recorded)
	})

	s.Run("error: anonymous watch is redirected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.WatchPaymentRequest{Gateway: "wallet"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("/signin?return_to=%2Forders%2Forder-1%2Fpayment-status", rec.Header().Get("Location"))
	})
}

func (s *PaymentStatusHandlerTestSuite) TestGetAndStop() {
	url := "/orders/order-1/payment-status"

	s.Run("success: recorded outcome", func() {
		s.mockStatus.EXPECT().Status(gomock.Any(), testPrincipal, "order-1").
			Return(&readmodel.PaymentStatusRM{OrderID: "order-1", Status: "success", Done: true, Recorded: true, Attempt: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, validToken)

		var got readmodel.PaymentStatusRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Done)
		s.Nil(got.NextCheckAt)
	})

	s.Run("error: 404 for an unknown poll", func() {
		s.mockStatus.EXPECT().Status(gomock.Any(), testPrincipal, "order-1").Return(nil, usecase.ErrPollNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, validToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No payment check")
	})

	s.Run("success: stop returns 204", func() {
		s.mockStatus.EXPECT().Stop(gomock.Any(), testPrincipal, "order-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, validToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
