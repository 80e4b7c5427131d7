package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	resdto "storefront-bff/internal/handler/dto/response"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/cookie"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/ports"

	"github.com/gin-gonic/gin"
)

// ReturnPathHeader lets the UI name the page an API call originates from
const ReturnPathHeader = "X-Return-Path"

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	guard          *usecase.AuthGuard
	cookies        config.CookieConfig
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, guard *usecase.AuthGuard, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		guard:          guard,
		cookies:        cfg.Cookie,
	}
}

// RequireAuth is the route-level call site of the sign-in guard
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := m.guard.RequireAuth(m.authenticate(c), ReturnPath(c))
		if !d.Proceed {
			m.Redirect(c, d, nil)
			return
		}

		setPrincipal(c, d.Principal)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
// Handlers on public pages guard their own actions.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := m.authenticate(c); p != nil {
			setPrincipal(c, *p)
		}
		c.Next()
	}
}

// Redirect answers with 401, the sign-in location and the path to come back to
func (m *AuthMiddleware) Redirect(c *gin.Context, d usecase.Decision, cause error) {
	if cause == nil {
		cause = errs.ErrUnauthenticated
	}

	cookie.SetReturnPath(c, m.cookies, d.ReturnPath)
	c.Header("Location", d.RedirectTo)

	resp := httperr.NewResponse(http.StatusUnauthorized, httperr.KindUnauthenticated, d.Message).
		WithDetail(resdto.SignInRedirectResponse{RedirectTo: d.RedirectTo, ReturnPath: d.ReturnPath})
	httperr.Abort(c, cause, resp)
}

// Challenge treats the caller as signed out, e.g. after the commerce API refused its token
func (m *AuthMiddleware) Challenge(c *gin.Context, cause error) {
	m.Redirect(c, m.guard.RequireAuth(nil, ReturnPath(c)), cause)
}

func (m *AuthMiddleware) authenticate(c *gin.Context) *ports.Principal {
	token := cookie.GetSessionToken(c)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	if token == "" {
		return nil
	}

	p, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Token validation failed in auth middleware", "error", err.Error())
		return nil
	}
	return &p
}

func setPrincipal(c *gin.Context, p ports.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.UserID,
	})
}

// GetPrincipal returns nil for anonymous requests
func GetPrincipal(c *gin.Context) *ports.Principal {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil
	}
	p, ok := v.(ports.Principal)
	if !ok {
		return nil
	}
	return &p
}

func ReturnPath(c *gin.Context) string {
	if p := c.GetHeader(ReturnPathHeader); p != "" {
		return p
	}
	return c.Request.URL.RequestURI()
}
