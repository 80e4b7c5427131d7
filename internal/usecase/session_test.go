//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/jwt"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/state"
	portsmock "storefront-bff/tests/mock/ports"
	usecasemock "storefront-bff/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionUseCase(t *testing.T) {
	ctx := context.Background()

	type deps struct {
		svc        *jwt.Service
		checkoutUC *usecasemock.MockCheckoutUseCase
		persister  *portsmock.MockStatePersister
	}
	setup := func(t *testing.T) (usecase.SessionUseCase, deps) {
		ctrl := gomock.NewController(t)
		d := deps{
			svc:        jwt.NewService("secret", time.Hour),
			checkoutUC: usecasemock.NewMockCheckoutUseCase(ctrl),
			persister:  portsmock.NewMockStatePersister(ctrl),
		}
		return usecase.NewSessionUseCase(d.svc, d.checkoutUC, state.NewContainer(d.persister, discardLogger()), discardLogger()), d
	}

	t.Run("issues a token carrying the api token", func(t *testing.T) {
		uc, d := setup(t)

		rm, err := uc.Issue(ctx, " user-1 ", testToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", rm.UserID)
		assert.Equal(t, time.Hour, rm.ExpiresIn)

		claims, err := d.svc.ValidateToken(rm.Token)
		require.NoError(t, err)
		assert.Equal(t, testToken, claims.APIToken)
	})

	t.Run("missing api token", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Issue(ctx, "user-1", "  ")
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("end leaves the checkout and purges persisted state", func(t *testing.T) {
		uc, d := setup(t)
		d.checkoutUC.EXPECT().Leave(gomock.Any(), testPrincipal).Return(nil)
		d.persister.EXPECT().Delete(gomock.Any(), testPrincipal.UserID, "cart").Return(nil)
		d.persister.EXPECT().Delete(gomock.Any(), testPrincipal.UserID, "wishlist").Return(nil)

		require.NoError(t, uc.End(ctx, testPrincipal))
	})

	t.Run("end succeeds when the state store is down", func(t *testing.T) {
		uc, d := setup(t)
		d.checkoutUC.EXPECT().Leave(gomock.Any(), testPrincipal).Return(nil)
		d.persister.EXPECT().Delete(gomock.Any(), testPrincipal.UserID, "cart").Return(errs.Mark(assert.AnError, errs.ErrTransient))

		require.NoError(t, uc.End(ctx, testPrincipal))
	})
}
