package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/jwt"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"
	"storefront-bff/internal/usecase/state"
)

// SessionUseCase turns a commerce API token obtained at sign-in into a storefront session
type SessionUseCase interface {
	Issue(ctx context.Context, userID, apiToken string) (*readmodel.SessionRM, error)
	End(ctx context.Context, p ports.Principal) error
}

type sessionUseCaseImpl struct {
	jwtService *jwt.Service
	duration   time.Duration
	checkout   CheckoutUseCase
	store      *state.Container
	logger     *slog.Logger
}

func NewSessionUseCase(jwtService *jwt.Service, checkout CheckoutUseCase, store *state.Container, logger *slog.Logger) SessionUseCase {
	return &sessionUseCaseImpl{
		jwtService: jwtService,
		duration:   jwtService.Duration(),
		checkout:   checkout,
		store:      store,
		logger:     logger,
	}
}

func (u *sessionUseCaseImpl) Issue(ctx context.Context, userID, apiToken string) (*readmodel.SessionRM, error) {
	userID = strings.TrimSpace(userID)
	apiToken = strings.TrimSpace(apiToken)
	if userID == "" || apiToken == "" {
		return nil, errs.Mark(errs.New("user id and api token are required"), errs.ErrUnauthenticated)
	}

	token, err := u.jwtService.GenerateToken(userID, apiToken)
	if err != nil {
		return nil, errs.Wrap(err, "generate session token")
	}

	u.logger.InfoContext(ctx, "session issued", slog.String("user_id", userID))
	return &readmodel.SessionRM{Token: token, UserID: userID, ExpiresIn: u.duration}, nil
}

// End leaves the checkout and purges the user's client state, persisted entities included.
// The commerce cart itself is untouched and is mirrored again at the next sign-in.
func (u *sessionUseCaseImpl) End(ctx context.Context, p ports.Principal) error {
	if err := u.checkout.Leave(ctx, p); err != nil {
		return err
	}
	if err := u.store.Clear(ctx, p.UserID); err != nil {
		// the in-memory copy is gone already
		u.logger.WarnContext(ctx, "failed to purge persisted state",
			slog.String("user_id", p.UserID),
			slog.Any("error", err),
		)
	}
	u.logger.InfoContext(ctx, "session ended", slog.String("user_id", p.UserID))
	return nil
}
