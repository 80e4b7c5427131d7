package gateway

import (
	"context"
	"log/slog"
	"net/url"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/credcrypt"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/patch"
	"storefront-bff/internal/usecase/ports"
)

// WalletAdapter sends the user to the provider; the outcome is discovered by polling later
type WalletAdapter struct {
	orders    ports.OrderAPI
	decrypter *credcrypt.Decrypter
	recorder  *Recorder
	logger    *slog.Logger
}

func NewWalletAdapter(orders ports.OrderAPI, decrypter *credcrypt.Decrypter, recorder *Recorder, logger *slog.Logger) *WalletAdapter {
	return &WalletAdapter{
		orders:    orders,
		decrypter: decrypter,
		recorder:  recorder,
		logger:    logger,
	}
}

func (a *WalletAdapter) Gateway() payment.Gateway {
	return payment.GatewayWallet
}

func (a *WalletAdapter) Initiate(ctx context.Context, token string, req checkout.SubmitRequest) (payment.Outcome, error) {
	order, err := a.orders.CreateOrder(ctx, token, req)
	if err != nil {
		return nil, errs.Wrap(err, "create wallet order")
	}

	creds, err := a.credentials(order.Credentials)
	if err != nil {
		rec, recErr := payment.NewRecord(order.OrderID, payment.GatewayWallet, payment.StatusFailure, nil, patch.Ptr("redirect unavailable"))
		if recErr == nil {
			if _, recErr = a.recorder.Record(context.WithoutCancel(ctx), token, rec); recErr != nil {
				a.logger.ErrorContext(ctx, "failed to record unpayable wallet order",
					slog.String("order_id", order.OrderID),
					slog.Any("error", recErr),
				)
			}
		}
		return nil, errs.Mark(errs.Wrap(err, "wallet credentials"), errs.ErrPaymentFailed)
	}

	return payment.Redirect{
		Order:  order.OrderID,
		Amount: order.Amount,
		URL:    creds.RedirectURL,
	}, nil
}

func (a *WalletAdapter) credentials(enc ports.EncryptedCredentials) (payment.WalletCredentials, error) {
	if enc.RedirectURL == nil {
		return payment.WalletCredentials{}, payment.ErrMissingCredentials
	}
	raw, err := a.decrypter.Decrypt(*enc.RedirectURL)
	if err != nil {
		return payment.WalletCredentials{}, err
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return payment.WalletCredentials{}, errs.Mark(errs.New("invalid redirect url"), credcrypt.ErrMalformedField)
	}
	ref, err := a.decrypter.DecryptOptional(enc.MerchantRef)
	if err != nil {
		return payment.WalletCredentials{}, err
	}
	return payment.WalletCredentials{RedirectURL: u.String(), MerchantRef: ref}, nil
}
