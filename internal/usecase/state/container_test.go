//go:build unit

package state_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront-bff/internal/usecase/state"
	"storefront-bff/tests/common/builder"
	portsmock "storefront-bff/tests/mock/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = "user-1"

// memoryPersister backs the mock with a map so restarts can be simulated
func memoryPersister(t *testing.T, saved map[string][]byte) *portsmock.MockStatePersister {
	m := portsmock.NewMockStatePersister(gomock.NewController(t))
	m.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user, entity string) ([]byte, bool, error) {
			data, ok := saved[user+":"+entity]
			return data, ok, nil
		}).AnyTimes()
	m.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user, entity string, data []byte) error {
			saved[user+":"+entity] = data
			return nil
		}).AnyTimes()
	m.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user, entity string) error {
			delete(saved, user+":"+entity)
			return nil
		}).AnyTimes()
	return m
}

func newContainer(t *testing.T, saved map[string][]byte) *state.Container {
	return state.NewContainer(memoryPersister(t, saved), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestContainer_Update(t *testing.T) {
	ctx := context.Background()
	saved := map[string][]byte{}
	c := newContainer(t, saved)

	s, err := c.Update(ctx, userID, func(s *state.Store) {
		s.AddToCart("prod-a", 2)
		s.SetWishlisted("prod-b", true)
		s.Notify("Added to cart")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cart.Count())
	assert.Equal(t, []string{"prod-b"}, s.Wishlist)
	assert.Equal(t, []string{"Added to cart"}, s.Notices)

	assert.Contains(t, saved, userID+":cart")
	assert.Contains(t, saved, userID+":wishlist")
	assert.NotContains(t, saved, userID+":notices")
}

func TestContainer_Rehydrate(t *testing.T) {
	ctx := context.Background()
	saved := map[string][]byte{}

	before := newContainer(t, saved)
	_, err := before.Update(ctx, userID, func(s *state.Store) {
		s.AddToCart("prod-a", 1)
		s.SetWishlisted("prod-c", true)
		s.Notify("transient")
	})
	require.NoError(t, err)

	after := newContainer(t, saved)
	s, err := after.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"prod-a": 1}, s.Cart.Items)
	assert.Equal(t, []string{"prod-c"}, s.Wishlist)
	assert.Empty(t, s.Notices)
}

func TestContainer_CorruptEntityIsReset(t *testing.T) {
	saved := map[string][]byte{
		userID + ":cart":     []byte(`{"items":`),
		userID + ":wishlist": []byte(`["prod-z"]`),
	}
	c := newContainer(t, saved)

	s, err := c.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Cart.Count())
	assert.NotNil(t, s.Cart.Items)
	assert.Equal(t, []string{"prod-z"}, s.Wishlist)
}

func TestContainer_Clear(t *testing.T) {
	ctx := context.Background()
	saved := map[string][]byte{}
	c := newContainer(t, saved)

	_, err := c.Update(ctx, userID, func(s *state.Store) { s.ReplaceCart(builder.SnapshotOf("10.00", "20.00")) })
	require.NoError(t, err)
	require.NoError(t, c.Clear(ctx, userID))
	assert.Empty(t, saved)

	s, err := c.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Cart.Count())
}

func TestStore_Notify(t *testing.T) {
	c := newContainer(t, map[string][]byte{})

	s, err := c.Update(context.Background(), userID, func(s *state.Store) {
		for _, msg := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7"} {
			s.Notify(msg)
		}
	})
	require.NoError(t, err)
	assert.Len(t, s.Notices, state.MaxNotices)
	assert.Equal(t, []string{"n3", "n4", "n5", "n6", "n7"}, s.Notices)
}

func TestStore_SetWishlisted(t *testing.T) {
	c := newContainer(t, map[string][]byte{})
	ctx := context.Background()

	runCases := []struct {
		name string
		fn   func(*state.Store)
		want []string
	}{
		{name: "add keeps order", fn: func(s *state.Store) { s.SetWishlisted("b", true); s.SetWishlisted("a", true) }, want: []string{"a", "b"}},
		{name: "add twice is a no-op", fn: func(s *state.Store) { s.SetWishlisted("a", true) }, want: []string{"a", "b"}},
		{name: "remove", fn: func(s *state.Store) { s.SetWishlisted("b", false) }, want: []string{"a"}},
		{name: "remove missing is a no-op", fn: func(s *state.Store) { s.SetWishlisted("x", false) }, want: []string{"a"}},
	}

	for _, tc := range runCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := c.Update(ctx, userID, tc.fn)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Wishlist)
		})
	}
}
