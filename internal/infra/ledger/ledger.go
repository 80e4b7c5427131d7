// Package ledger persists which payment outcomes have been recorded with the backend.
package ledger

import (
	"context"
	"log/slog"

	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/infra"
	"storefront-bff/internal/infra/sqlc"
	"storefront-bff/internal/usecase/ports"
)

var _ ports.OutcomeLedger = (*PostgresLedger)(nil)

type LedgerQueries interface {
	ClaimPaymentOutcome(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPaymentOutcomeParams) (int64, error)
	ReleasePaymentOutcome(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleasePaymentOutcomeParams) error
}

type PostgresLedger struct {
	queries LedgerQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewPostgresLedger(queries *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *PostgresLedger {
	return newPostgresLedger(queries, db, logger)
}

func newPostgresLedger(queries LedgerQueries, db sqlc.DBTX, logger *slog.Logger) *PostgresLedger {
	return &PostgresLedger{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (l *PostgresLedger) Claim(ctx context.Context, orderID string, kind ports.RecordKind, status payment.Status) (bool, error) {
	params := sqlc.ClaimPaymentOutcomeParams{
		OrderID: orderID,
		Kind:    string(kind),
		Status:  status.String(),
	}

	n, err := l.queries.ClaimPaymentOutcome(ctx, l.db, params)
	if err != nil {
		return false, infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to claim payment outcome", err)
	}

	return n == 1, nil
}

func (l *PostgresLedger) Release(ctx context.Context, orderID string, kind ports.RecordKind) error {
	params := sqlc.ReleasePaymentOutcomeParams{
		OrderID: orderID,
		Kind:    string(kind),
	}

	if err := l.queries.ReleasePaymentOutcome(ctx, l.db, params); err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to release payment outcome", err)
	}

	return nil
}
