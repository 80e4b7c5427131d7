//go:build unit

package commerce_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/coupon"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/infra"
	"storefront-bff/internal/infra/commerce"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/patch"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "api-token"

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*config.CommerceConfig)) *commerce.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Commerce
	cfg.BaseURL = srv.URL + "/api/"
	for _, m := range mutate {
		m(&cfg)
	}
	return commerce.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_FetchCheckoutData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/checkout-data", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{
			"cart_products": [
				{"product_id": "p1", "quantity": 2, "unit_price": "30.00",
				 "variants": {"size": "m"}, "offered_variants": {"size": ["s", "m"]}},
				{"product_id": "p2", "quantity": 3, "unit_price": 20, "offer_price": "15.50"}
			],
			"addresses": [
				{"id": "a1", "name": "Home", "zip_code": "100-0001", "is_default_shipping": true},
				{"id": "a2", "name": "Office", "is_default_billing": true}
			],
			"available_gateways": [
				{"id": "cash", "label": "Cash on delivery", "status": 1},
				{"id": "card", "label": "Card", "status": 0},
				{"id": "crypto", "label": "Crypto", "status": 1}
			]
		}`)
	})

	data, err := client.FetchCheckoutData(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "106.5", data.Cart.Subtotal().String())
	assert.Equal(t, 5, data.Cart.ItemCount())

	ship, ok := data.Book.DefaultShipping()
	require.True(t, ok)
	assert.Equal(t, "a1", ship.ID)
	assert.Equal(t, "100-0001", ship.ZipCode)
	bill, ok := data.Book.DefaultBilling()
	require.True(t, ok)
	assert.Equal(t, "a2", bill.ID)

	assert.Equal(t, []payment.Descriptor{
		{ID: payment.GatewayCash, Label: "Cash on delivery", Enabled: true},
		{ID: payment.GatewayCard, Label: "Card", Enabled: false},
	}, data.Gateways)
}

func TestClient_FetchCheckoutData_InvalidVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"cart_products": [
			{"product_id": "p1", "quantity": 1, "unit_price": "10", "variants": {"color": "red"}, "offered_variants": {"size": ["m"]}}
		]}`)
	})

	_, err := client.FetchCheckoutData(context.Background(), token)
	assert.True(t, infra.IsCommerceKind(err, infra.KindDecode))
	assert.True(t, errs.Is(err, errs.ErrTransient))
}

func TestClient_CheckServiceability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pincode-check", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["shipping_address_id"] == "a1" {
			writeJSON(w, http.StatusOK, `{"serviceable": true, "shipping_cost": "12.50", "shipping_rule": "standard"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"serviceable": false}`)
	})

	svc, err := client.CheckServiceability(context.Background(), token, "a1")
	require.NoError(t, err)
	assert.True(t, svc.Serviceable())
	assert.True(t, svc.AppliesTo("a1"))
	assert.Equal(t, "12.5", svc.ShippingCost().String())
	assert.Equal(t, "standard", svc.ShippingRule())

	svc, err = client.CheckServiceability(context.Background(), token, "a9")
	require.NoError(t, err)
	assert.False(t, svc.Serviceable())
	assert.True(t, svc.ShippingCost().IsZero())
}

func TestClient_ApplyCoupon(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apply-coupon", r.URL.Path)
		if r.URL.Query().Get("code") == "SAVE20" {
			writeJSON(w, http.StatusOK, `{"coupon": {"code": "SAVE20", "discount": "20", "name": "Spring sale"}, "final_price": "88.00", "apply_qty": 1}`)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, `{"message": "Coupon has expired"}`)
	})

	code, err := coupon.NewCouponCode("SAVE20")
	require.NoError(t, err)
	c, err := client.ApplyCoupon(context.Background(), token, code)
	require.NoError(t, err)
	assert.Equal(t, "Spring sale", c.DisplayName())
	assert.Equal(t, "20", c.Discount().Value().String())

	old, err := coupon.NewCouponCode("OLD")
	require.NoError(t, err)
	_, err = client.ApplyCoupon(context.Background(), token, old)
	assert.True(t, errs.Is(err, errs.ErrRejected))
	assert.True(t, infra.IsCommerceKind(err, infra.KindRejected))
	assert.Equal(t, "Coupon has expired", errs.Hint(err))
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/order-create", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "card", q.Get("gateway"))
		assert.Equal(t, "a1", q.Get("shipping_address_id"))
		assert.Equal(t, "a2", q.Get("billing_address_id"))
		assert.Equal(t, "SAVE20", q.Get("coupon_code"))
		assert.Equal(t, "88", q.Get("total"))
		writeJSON(w, http.StatusOK, `{"order": "ord-1", "amount": "88.00",
			"payment_creds": {"publishable_key": "ZW5j", "client_secret": "c2Vj"}}`)
	})

	order, err := client.CreateOrder(context.Background(), token, checkout.SubmitRequest{
		ShippingAddressID: "a1",
		BillingAddressID:  "a2",
		Gateway:           payment.GatewayCard,
		CouponCode:        patch.Ptr("SAVE20"),
		ShippingCost:      decimal.RequireFromString("10"),
		ShippingRule:      "standard",
		Total:             decimal.RequireFromString("88"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.OrderID)
	assert.Equal(t, "88", order.Amount.String())
	require.NotNil(t, order.Credentials.PublishableKey)
	assert.Equal(t, "ZW5j", *order.Credentials.PublishableKey)
	assert.Nil(t, order.Credentials.AccountID)
	assert.Nil(t, order.Credentials.RedirectURL)
}

func TestClient_PaymentStatus(t *testing.T) {
	var stored []map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/order-status-query":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body["order_id"] == "ord-bad" {
				writeJSON(w, http.StatusOK, `{"status": "refunded"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"status": "pending", "raw_provider_payload": {"state": "AUTHORIZING"}}`)
		case "/api/store-payment-response":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			stored = append(stored, body)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	status, err := client.QueryPaymentStatus(ctx, token, "ord-1", payment.GatewayWallet)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, status)

	_, err = client.QueryPaymentStatus(ctx, token, "ord-bad", payment.GatewayWallet)
	assert.True(t, infra.IsCommerceKind(err, infra.KindDecode))

	runCases := []struct {
		status payment.Status
		code   float64
	}{
		{payment.StatusFailure, 0},
		{payment.StatusSuccess, 1},
		{payment.StatusPending, 2},
	}
	for _, tc := range runCases {
		rec, err := payment.NewRecord("ord-1", payment.GatewayWallet, tc.status, nil, nil)
		require.NoError(t, err)
		require.NoError(t, client.StorePaymentResponse(ctx, token, rec))
	}

	require.Len(t, stored, len(runCases))
	for i, tc := range runCases {
		assert.Equal(t, tc.code, stored[i]["payment_status"], "status %s", tc.status)
		assert.Equal(t, "wallet", stored[i]["gateway_name"])
		assert.NotContains(t, stored[i], "transaction_id")
	}
}

func TestClient_Failures(t *testing.T) {
	t.Run("server errors are transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadGateway, `{"message": "upstream down"}`)
		})

		_, err := client.FetchCheckoutData(context.Background(), token)
		assert.True(t, errs.Is(err, errs.ErrTransient))
		assert.False(t, errs.Is(err, errs.ErrRejected))
	})

	t.Run("unauthorized is rejected and unauthenticated", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message": "token expired"}`)
		})

		_, err := client.FetchCheckoutData(context.Background(), token)
		assert.True(t, errs.Is(err, errs.ErrRejected))
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("timeout is transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}, func(cfg *config.CommerceConfig) { cfg.Timeout = 50 * time.Millisecond })

		_, err := client.FetchCheckoutData(context.Background(), token)
		assert.True(t, errs.Is(err, errs.ErrTransient))
	})

	t.Run("breaker opens after consecutive transient failures", func(t *testing.T) {
		var hits atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}, func(cfg *config.CommerceConfig) {
			cfg.BreakerFailureThreshold = 3
			cfg.BreakerOpenTimeout = time.Minute
		})

		for range 5 {
			_, err := client.FetchCheckoutData(context.Background(), token)
			assert.True(t, errs.Is(err, errs.ErrTransient))
		}
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("rejections do not trip the breaker", func(t *testing.T) {
		var hits atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeJSON(w, http.StatusBadRequest, `{"message": "bad input"}`)
		}, func(cfg *config.CommerceConfig) { cfg.BreakerFailureThreshold = 2 })

		for range 4 {
			_, err := client.FetchCheckoutData(context.Background(), token)
			assert.True(t, errs.Is(err, errs.ErrRejected))
		}
		assert.Equal(t, int32(4), hits.Load())
	})
}
