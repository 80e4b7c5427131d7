//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"storefront-bff/internal/handler/dto/request"
	"storefront-bff/internal/pkg/cookie"
	"storefront-bff/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// StartSession exchanges a commerce API token for the session cookie
func StartSession(t *testing.T, router *gin.Engine, userID, apiToken string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/session",
		request.CreateSessionRequest{UserID: userID, APIToken: apiToken}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionTokenCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session token cookie is empty")

	return sessionCookie
}

func EndSession(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodDelete, "/api/session", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
