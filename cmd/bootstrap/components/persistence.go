package components

import (
	"log/slog"

	"storefront-bff/internal/infra/ledger"
	"storefront-bff/internal/infra/sqlc"
	"storefront-bff/internal/infra/store"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	ledgerModule,
	stateModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var ledgerModule = fx.Module("persistence/ledger",
	fx.Provide(
		fx.Annotate(
			ledger.NewPostgresLedger,
			fx.As(new(ports.OutcomeLedger)),
		),
	),
)

var stateModule = fx.Module("persistence/state",
	fx.Provide(
		fx.Annotate(
			NewStatePersister,
			fx.As(new(ports.StatePersister)),
		),
		state.NewContainer,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewStatePersister(client *redis.Client, cfg config.Config, logger *slog.Logger) *store.RedisPersister {
	return store.NewRedisPersister(client, cfg.Redis, logger)
}
