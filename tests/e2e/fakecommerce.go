//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"storefront-bff/internal/pkg/credcrypt"

	"github.com/stretchr/testify/require"
)

const (
	commerceToken = "commerce-token"
	walletOrderID = "ord-wallet-1"
	cashOrderID   = "ord-cash-1"
)

// FakeCommerce is an in-memory commerce backend serving one signed-in customer
type FakeCommerce struct {
	server    *httptest.Server
	decrypter *credcrypt.Decrypter

	mu            sync.Mutex
	cartEmpty     bool
	paymentStatus string
	stored        []map[string]any
	calls         map[string]int
}

func newFakeCommerce(t *testing.T, appKey string) *FakeCommerce {
	t.Helper()

	d, err := credcrypt.NewDecrypter(appKey)
	require.NoError(t, err)

	f := &FakeCommerce{decrypter: d, paymentStatus: "pending", calls: make(map[string]int)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeCommerce) BaseURL() string {
	return f.server.URL + "/api"
}

func (f *FakeCommerce) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartEmpty = false
	f.paymentStatus = "pending"
	f.stored = nil
	f.calls = make(map[string]int)
}

func (f *FakeCommerce) SetPaymentStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paymentStatus = status
}

func (f *FakeCommerce) EmptyCart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartEmpty = true
}

func (f *FakeCommerce) Stored() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.stored...)
}

func (f *FakeCommerce) Calls(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint]
}

func (f *FakeCommerce) serve(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	f.calls[endpoint]++
	f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+commerceToken {
		writeJSON(w, http.StatusUnauthorized, `{"message": "token expired"}`)
		return
	}

	switch endpoint {
	case "/checkout-data":
		f.checkoutData(w)
	case "/pincode-check":
		writeJSON(w, http.StatusOK, `{"serviceable": true, "shipping_cost": "10.00", "shipping_rule": "standard"}`)
	case "/apply-coupon":
		if r.URL.Query().Get("code") != "SAVE10" {
			writeJSON(w, http.StatusUnprocessableEntity, `{"message": "Coupon is not valid"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"coupon": {"code": "SAVE10", "discount": "10", "name": "Welcome"}, "apply_qty": 1}`)
	case "/cash-on-delivery":
		writeJSON(w, http.StatusOK, `{"success": true, "order_id": "`+cashOrderID+`", "message": "Order placed"}`)
	case "/order-create":
		f.orderCreate(w)
	case "/order-status-query":
		f.mu.Lock()
		status := f.paymentStatus
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, `{"status": "`+status+`"}`)
	case "/store-payment-response":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.stored = append(f.stored, body)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, `{}`)
	case "/add-to-cart":
		writeJSON(w, http.StatusOK, `{}`)
	case "/wishlist/toggle":
		writeJSON(w, http.StatusOK, `{"wishlisted": true}`)
	default:
		writeJSON(w, http.StatusNotFound, `{"message": "not found"}`)
	}
}

func (f *FakeCommerce) checkoutData(w http.ResponseWriter) {
	f.mu.Lock()
	empty := f.cartEmpty
	f.mu.Unlock()

	products := `[
		{"product_id": "p1", "quantity": 2, "unit_price": "30.00", "variants": {"size": "m"}, "offered_variants": {"size": ["s", "m"]}},
		{"product_id": "p2", "quantity": 1, "unit_price": "40.00", "offer_price": "35.00"}
	]`
	if empty {
		products = `[]`
	}
	writeJSON(w, http.StatusOK, `{
		"cart_products": `+products+`,
		"addresses": [
			{"id": "a1", "name": "Home", "zip_code": "100-0001", "is_default_shipping": true, "is_default_billing": true}
		],
		"available_gateways": [
			{"id": "cash", "label": "Cash on delivery", "status": 1},
			{"id": "card", "label": "Card", "status": 1},
			{"id": "wallet", "label": "Wallet", "status": 1}
		]
	}`)
}

func (f *FakeCommerce) orderCreate(w http.ResponseWriter) {
	redirect, err := f.decrypter.Encrypt("https://wallet.example.com/pay?ref=" + walletOrderID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, `{"message": "encrypt"}`)
		return
	}
	writeJSON(w, http.StatusOK, `{"order": "`+walletOrderID+`", "amount": "105.00", "payment_creds": {"redirect_url": "`+redirect+`"}}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
