//go:build unit

package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-bff/internal/infra"
	"storefront-bff/internal/infra/store"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase/state"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*store.RedisPersister, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig().Redis
	return store.NewRedisPersister(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestRedisPersister_RoundTrip(t *testing.T) {
	p, mr := setupTestRedis(t)
	ctx := context.Background()

	_, ok, err := p.Load(ctx, "user-1", "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Save(ctx, "user-1", "cart", []byte(`{"items":{"p1":2}}`)))
	assert.True(t, mr.Exists("storefront-test:user-1:cart"))
	assert.Equal(t, time.Hour, mr.TTL("storefront-test:user-1:cart"))

	data, ok, err := p.Load(ctx, "user-1", "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"items":{"p1":2}}`, string(data))

	require.NoError(t, p.Delete(ctx, "user-1", "cart"))
	assert.False(t, mr.Exists("storefront-test:user-1:cart"))
}

func TestRedisPersister_Expiry(t *testing.T) {
	p, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "user-1", "wishlist", []byte(`["p1"]`)))
	mr.FastForward(2 * time.Hour)

	_, ok, err := p.Load(ctx, "user-1", "wishlist")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisPersister_Unavailable(t *testing.T) {
	p, mr := setupTestRedis(t)
	mr.Close()

	_, _, err := p.Load(context.Background(), "user-1", "cart")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestRedisPersister_BacksStateContainer(t *testing.T) {
	p, _ := setupTestRedis(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := state.NewContainer(p, logger).Update(ctx, "user-1", func(s *state.Store) {
		s.AddToCart("p1", 3)
		s.Notify("Added")
	})
	require.NoError(t, err)

	restarted, err := state.NewContainer(p, logger).Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, restarted.Cart.Count())
	assert.Empty(t, restarted.Notices)
}
