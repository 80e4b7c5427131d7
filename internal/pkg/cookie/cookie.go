package cookie

import (
	"net/http"
	"time"

	"storefront-bff/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionTokenCookieName = "session_token"
	ReturnPathCookieName   = "return_to"

	returnPathMaxAge = 10 * time.Minute
)

func SetSessionToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionTokenCookieName)
	return token
}

// SetReturnPath remembers where the user was sent away from, so sign-in can bring them back
func SetReturnPath(c *gin.Context, cfg config.CookieConfig, path string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ReturnPathCookieName,
		path,
		int(returnPathMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
