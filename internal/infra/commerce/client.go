// Package commerce is the HTTP client for the remote commerce backend.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/coupon"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/infra"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 1 << 20

var _ ports.CommerceAPI = (*Client)(nil)

type call struct {
	method   string
	endpoint string
	token    string
	query    url.Values
	body     any
}

type response struct {
	status int
	body   []byte
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*response]
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(cfg config.CommerceConfig, logger *slog.Logger) *Client {
	return newClient(cfg, &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}, logger)
}

func newClient(cfg config.CommerceConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	threshold := cfg.BreakerFailureThreshold
	breaker := gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        "commerce-api",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// only transient failures count against the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || !errs.Is(err, errs.ErrTransient)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		breaker: breaker,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (c *Client) FetchCheckoutData(ctx context.Context, token string) (*ports.CheckoutData, error) {
	var resp checkoutDataResponse
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/checkout-data", token: token}, &resp); err != nil {
		return nil, err
	}
	data, err := resp.toPort()
	if err != nil {
		return nil, infra.NewCommerceError(infra.KindDecode, "/checkout-data", http.StatusOK, "invalid checkout data", err)
	}
	return data, nil
}

func (c *Client) CheckServiceability(ctx context.Context, token, addressID string) (address.Serviceability, error) {
	var resp pincodeCheckResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/pincode-check",
		token:    token,
		body:     pincodeCheckRequest{ShippingAddressID: addressID},
	}, &resp)
	if err != nil {
		return address.Serviceability{}, err
	}

	svc, err := address.NewServiceability(addressID, resp.Serviceable, resp.ShippingCost, resp.ShippingRule)
	if err != nil {
		return address.Serviceability{}, infra.NewCommerceError(infra.KindDecode, "/pincode-check", http.StatusOK, "invalid serviceability", err)
	}
	return svc, nil
}

func (c *Client) ApplyCoupon(ctx context.Context, token string, code coupon.Code) (*coupon.Coupon, error) {
	var resp couponResponse
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/apply-coupon",
		token:    token,
		query:    url.Values{"code": {code.String()}},
	}, &resp)
	if err != nil {
		return nil, err
	}

	returned := resp.Coupon.Code
	if returned == "" {
		returned = code.String()
	}
	cp, err := coupon.NewCoupon(returned, resp.Coupon.Discount, resp.Coupon.Name, resp.ApplyQty, resp.FinalPrice)
	if err != nil {
		return nil, infra.NewCommerceError(infra.KindDecode, "/apply-coupon", http.StatusOK, "invalid coupon", err)
	}
	return cp, nil
}

func (c *Client) PlaceCashOrder(ctx context.Context, token string, req checkout.SubmitRequest) (*ports.CashOrderResult, error) {
	var resp cashOrderResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/cash-on-delivery",
		token:    token,
		body:     newOrderRequest(req),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.CashOrderResult{Success: resp.Success, OrderID: resp.OrderID, Message: resp.Message}, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, req checkout.SubmitRequest) (*ports.CreatedOrder, error) {
	var resp orderCreateResponse
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/order-create",
		token:    token,
		query:    newOrderRequest(req).query(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Order == "" {
		return nil, infra.NewCommerceError(infra.KindDecode, "/order-create", http.StatusOK, "missing order id", nil)
	}

	creds := resp.PaymentCreds
	return &ports.CreatedOrder{
		OrderID: resp.Order,
		Amount:  resp.Amount,
		Credentials: ports.EncryptedCredentials{
			PublishableKey: creds.PublishableKey,
			ClientSecret:   creds.ClientSecret,
			AccountID:      creds.AccountID,
			RedirectURL:    creds.RedirectURL,
			MerchantRef:    creds.MerchantRef,
		},
	}, nil
}

func (c *Client) QueryPaymentStatus(ctx context.Context, token, orderID string, gateway payment.Gateway) (payment.Status, error) {
	var resp statusQueryResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/order-status-query",
		token:    token,
		body:     statusQueryRequest{OrderID: orderID, Gateway: gateway.String()},
	}, &resp)
	if err != nil {
		return "", err
	}

	status, err := payment.ParseStatus(resp.Status)
	if err != nil {
		return "", infra.NewCommerceError(infra.KindDecode, "/order-status-query", http.StatusOK, "unknown payment status", err)
	}
	return status, nil
}

func (c *Client) StorePaymentResponse(ctx context.Context, token string, record payment.Record) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/store-payment-response",
		token:    token,
		body: storePaymentRequest{
			OrderID:       record.OrderID,
			GatewayName:   record.Gateway.String(),
			PaymentStatus: record.Status.Code(),
			TransactionID: record.TransactionID,
			Notes:         record.Notes,
		},
	}, nil)
}

func (c *Client) AddToCart(ctx context.Context, token string, item ports.CartItem) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/add-to-cart",
		token:    token,
		body:     addToCartRequest{ProductID: item.ProductID, Quantity: item.Quantity, Variants: item.Variants},
	}, nil)
}

func (c *Client) ToggleWishlist(ctx context.Context, token, productID string) (bool, error) {
	var resp wishlistToggleResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/wishlist/toggle",
		token:    token,
		body:     wishlistToggleRequest{ProductID: productID},
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Wishlisted, nil
}

// do runs one call through the breaker with the configured timeout and decodes the body into out
func (c *Client) do(ctx context.Context, cl call, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.send(ctx, cl)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return infra.NewCommerceError(infra.KindTransient, cl.endpoint, 0, "", err)
		}
		c.logger.WarnContext(ctx, "commerce call failed",
			slog.String("endpoint", cl.endpoint),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return err
	}

	c.logger.DebugContext(ctx, "commerce call",
		slog.String("endpoint", cl.endpoint),
		slog.Int("status", resp.status),
		slog.Duration("elapsed", time.Since(start)),
	)
	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return infra.NewCommerceError(infra.KindDecode, cl.endpoint, resp.status, "", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, cl call) (*response, error) {
	target := c.baseURL + cl.endpoint
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, errs.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, errs.Wrapf(err, "%s cancelled", cl.endpoint)
		}
		return nil, infra.NewCommerceError(infra.KindTransient, cl.endpoint, 0, "", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, infra.NewCommerceError(infra.KindTransient, cl.endpoint, res.StatusCode, "read body", err)
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return &response{status: res.StatusCode, body: data}, nil
	case res.StatusCode >= 400 && res.StatusCode < 500:
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		rejected := infra.NewCommerceError(infra.KindRejected, cl.endpoint, res.StatusCode, eb.Message, nil)
		if res.StatusCode == http.StatusUnauthorized {
			rejected = errs.Mark(rejected, errs.ErrUnauthenticated)
		}
		return nil, rejected
	default:
		return nil, infra.NewCommerceError(infra.KindTransient, cl.endpoint, res.StatusCode, "", nil)
	}
}
