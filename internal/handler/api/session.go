package api

import (
	"net/http"

	reqdto "storefront-bff/internal/handler/dto/request"
	resdto "storefront-bff/internal/handler/dto/response"
	"storefront-bff/internal/handler/httperr"
	"storefront-bff/internal/handler/middleware"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/cookie"
	"storefront-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	auth           *middleware.AuthMiddleware
	cookies        config.CookieConfig
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase, auth *middleware.AuthMiddleware, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		auth:           auth,
		cookies:        cfg.Cookie,
	}
}

// @Summary Start session
// @Description Exchanges the commerce API token obtained at sign-in for a storefront session cookie
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSessionRequest true "Sign-in result"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/session [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.sessionUseCase.Issue(c.Request.Context(), req.UserID, req.APIToken)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sign-in result", nil)
		return
	}

	cookie.SetSessionToken(c, h.cookies, rm.Token, rm.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.FromSessionRM(rm))
}

// @Summary End session
// @Tags session
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/session [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		h.auth.Challenge(c, nil)
		return
	}

	if err := h.sessionUseCase.End(c.Request.Context(), *p); err != nil {
		abortWithUseCaseError(c, h.auth, err)
		return
	}

	cookie.ClearSessionToken(c, h.cookies)
	c.Status(http.StatusNoContent)
}
