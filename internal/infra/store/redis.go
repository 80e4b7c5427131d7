package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront-bff/internal/infra"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase/ports"

	"github.com/redis/go-redis/v9"
)

var _ ports.StatePersister = (*RedisPersister)(nil)

// RedisPersister keeps one JSON value per user and entity
type RedisPersister struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisPersister(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) *RedisPersister {
	return &RedisPersister{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.StateTTL,
		logger: logger,
	}
}

func (p *RedisPersister) Load(ctx context.Context, userID, entity string) ([]byte, bool, error) {
	data, err := p.client.Get(ctx, p.key(userID, entity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(p.logger, infra.KindDBFailure, "redis get failed", err)
	}
	return data, true, nil
}

func (p *RedisPersister) Save(ctx context.Context, userID, entity string, data []byte) error {
	if err := p.client.Set(ctx, p.key(userID, entity), data, p.ttl).Err(); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindDBFailure, "redis set failed", err)
	}
	return nil
}

func (p *RedisPersister) Delete(ctx context.Context, userID, entity string) error {
	if err := p.client.Del(ctx, p.key(userID, entity)).Err(); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindDBFailure, "redis delete failed", err)
	}
	return nil
}

func (p *RedisPersister) key(userID, entity string) string {
	return p.prefix + ":" + userID + ":" + entity
}
