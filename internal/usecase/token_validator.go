package usecase

import (
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/pkg/jwt"
	"storefront-bff/internal/usecase/ports"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (ports.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (ports.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ports.Principal{}, errs.Mark(err, errs.ErrUnauthenticated)
	}

	return ports.Principal{UserID: claims.UserID, APIToken: claims.APIToken}, nil
}
