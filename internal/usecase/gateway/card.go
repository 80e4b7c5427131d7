package gateway

import (
	"context"
	"log/slog"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/credcrypt"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/patch"
	"storefront-bff/internal/usecase/ports"
)

// CardAdapter hands a client secret to the browser, which confirms the card with the provider
type CardAdapter struct {
	orders    ports.OrderAPI
	decrypter *credcrypt.Decrypter
	recorder  *Recorder
	logger    *slog.Logger
}

func NewCardAdapter(orders ports.OrderAPI, decrypter *credcrypt.Decrypter, recorder *Recorder, logger *slog.Logger) *CardAdapter {
	return &CardAdapter{
		orders:    orders,
		decrypter: decrypter,
		recorder:  recorder,
		logger:    logger,
	}
}

func (a *CardAdapter) Gateway() payment.Gateway {
	return payment.GatewayCard
}

func (a *CardAdapter) Initiate(ctx context.Context, token string, req checkout.SubmitRequest) (payment.Outcome, error) {
	order, err := a.orders.CreateOrder(ctx, token, req)
	if err != nil {
		return nil, errs.Wrap(err, "create card order")
	}

	creds, err := a.credentials(order.Credentials)
	if err != nil {
		a.recordUnpayable(ctx, token, order.OrderID, err)
		return nil, errs.Mark(errs.Wrap(err, "card credentials"), errs.ErrPaymentFailed)
	}

	return payment.ClientContinuation{
		Order:          order.OrderID,
		Amount:         order.Amount,
		Secret:         creds.ClientSecret,
		ProviderHandle: creds.PublishableKey,
		AccountID:      creds.AccountID,
	}, nil
}

func (a *CardAdapter) credentials(enc ports.EncryptedCredentials) (payment.CardCredentials, error) {
	if enc.PublishableKey == nil || enc.ClientSecret == nil {
		return payment.CardCredentials{}, payment.ErrMissingCredentials
	}
	key, err := a.decrypter.Decrypt(*enc.PublishableKey)
	if err != nil {
		return payment.CardCredentials{}, err
	}
	secret, err := a.decrypter.Decrypt(*enc.ClientSecret)
	if err != nil {
		return payment.CardCredentials{}, err
	}
	account, err := a.decrypter.DecryptOptional(enc.AccountID)
	if err != nil {
		return payment.CardCredentials{}, err
	}
	return payment.CardCredentials{PublishableKey: key, ClientSecret: secret, AccountID: account}, nil
}

// Complete records the browser's handshake result before it is reported back
func (a *CardAdapter) Complete(ctx context.Context, token, orderID string, success bool, transactionID, errorMessage *string) (payment.Status, error) {
	status := payment.StatusFailure
	if success {
		status = payment.StatusSuccess
	}
	rec, err := payment.NewRecord(orderID, payment.GatewayCard, status, transactionID, errorMessage)
	if err != nil {
		return "", err
	}
	if _, err := a.recorder.Record(ctx, token, rec); err != nil {
		return "", err
	}
	return status, nil
}

func (a *CardAdapter) recordUnpayable(ctx context.Context, token, orderID string, cause error) {
	rec, err := payment.NewRecord(orderID, payment.GatewayCard, payment.StatusFailure, nil, patch.Ptr("payment credentials unavailable"))
	if err != nil {
		return
	}
	if _, err := a.recorder.Record(context.WithoutCancel(ctx), token, rec); err != nil {
		a.logger.ErrorContext(ctx, "failed to record unpayable card order",
			slog.String("order_id", orderID),
			slog.Any("cause", cause),
			slog.Any("error", err),
		)
	}
}
