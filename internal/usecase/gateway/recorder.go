package gateway

import (
	"context"
	"log/slog"

	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
)

// Recorder sends store-payment-response at most once per order and record kind
type Recorder struct {
	payments ports.PaymentAPI
	ledger   ports.OutcomeLedger
	logger   *slog.Logger
}

func NewRecorder(payments ports.PaymentAPI, ledger ports.OutcomeLedger, logger *slog.Logger) *Recorder {
	return &Recorder{
		payments: payments,
		ledger:   ledger,
		logger:   logger,
	}
}

// Record returns false without calling the backend when the outcome was recorded before.
// A failed backend call releases the claim so the outcome can be recorded later.
func (r *Recorder) Record(ctx context.Context, token string, rec payment.Record) (bool, error) {
	kind := ports.RecordFinal
	if rec.Provisional() {
		kind = ports.RecordProvisional
	}
	log := r.logger.With(
		slog.String("order_id", rec.OrderID),
		slog.String("gateway", rec.Gateway.String()),
		slog.String("status", rec.Status.String()),
		slog.String("kind", string(kind)),
	)

	claimed, err := r.ledger.Claim(ctx, rec.OrderID, kind, rec.Status)
	switch {
	case err != nil:
		log.WarnContext(ctx, "outcome ledger unavailable, recording without durable guard", slog.Any("error", err))
	case !claimed:
		log.InfoContext(ctx, "payment outcome already recorded")
		return false, nil
	}

	if err := r.payments.StorePaymentResponse(ctx, token, rec); err != nil {
		if claimed {
			if relErr := r.ledger.Release(context.WithoutCancel(ctx), rec.OrderID, kind); relErr != nil {
				log.ErrorContext(ctx, "failed to release outcome claim", slog.Any("error", relErr))
			}
		}
		return false, errs.Wrap(err, "store payment response")
	}

	log.InfoContext(ctx, "payment outcome recorded")
	return true, nil
}
