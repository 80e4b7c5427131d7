//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-bff/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("issued token validates and carries the api token", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken("user-1", "api-token-1")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "api-token-1", claims.APIToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken("user-1", "api-token-1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("user-1", "api-token-1")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token without api token is rejected", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken("user-1", "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
