//go:build unit

package api_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/jwt"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/ports"
	usecasemock "storefront-bff/tests/mock/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

var testPrincipal = ports.Principal{UserID: "user-1", APIToken: "api-token-1"}

// newTestAuth wires the real guard and middleware over a validator that accepts validToken only
func newTestAuth(ctrl *gomock.Controller) (*middleware.AuthMiddleware, *usecase.AuthGuard) {
	cfg := config.NewTestConfig()
	guard := usecase.NewAuthGuard(cfg)

	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (ports.Principal, error) {
		if token != validToken {
			return ports.Principal{}, jwt.ErrInvalidToken
		}
		return testPrincipal, nil
	}).AnyTimes()

	return middleware.NewAuthMiddleware(validator, guard, cfg), guard
}

type errorBody struct {
	Error struct {
		Message     string `json:"message"`
		Kind        string `json:"kind"`
		Field       string `json:"field"`
		Dismissible bool   `json:"dismissible"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
