package usecase

import (
	"net/url"
	"strings"

	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase/ports"
)

const SignInMessage = "Please sign in to continue"

// Decision is the result of an authorization check: proceed, or redirect to sign-in
type Decision struct {
	Proceed    bool
	Principal  ports.Principal
	RedirectTo string
	ReturnPath string
	Message    string
}

// AuthGuard is the single check used by route middleware and by inline actions on public pages
type AuthGuard struct {
	signInPath string
}

func NewAuthGuard(cfg config.Config) *AuthGuard {
	return &AuthGuard{signInPath: cfg.Auth.SignInPath}
}

func (g *AuthGuard) RequireAuth(principal *ports.Principal, returnPath string) Decision {
	if principal != nil && principal.UserID != "" && principal.APIToken != "" {
		return Decision{Proceed: true, Principal: *principal}
	}

	returnPath = sanitizeReturnPath(returnPath)
	return Decision{
		RedirectTo: g.signInPath + "?" + url.Values{"return_to": {returnPath}}.Encode(),
		ReturnPath: returnPath,
		Message:    SignInMessage,
	}
}

// Guard runs action only for an authenticated principal
func (g *AuthGuard) Guard(principal *ports.Principal, returnPath string, action func(ports.Principal) error) (Decision, error) {
	d := g.RequireAuth(principal, returnPath)
	if !d.Proceed {
		return d, nil
	}
	return d, action(d.Principal)
}

// only same-site relative paths are accepted as return targets
func sanitizeReturnPath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return "/"
	}
	return p
}
