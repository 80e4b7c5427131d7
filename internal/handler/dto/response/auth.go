package response

import "storefront-bff/internal/usecase/readmodel"

type SignInRedirectResponse struct {
	RedirectTo string `json:"redirect_to"`
	ReturnPath string `json:"return_path"`
}

type SessionResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	ExpiresIn   int    `json:"expires_in"`
}

func FromSessionRM(rm *readmodel.SessionRM) *SessionResponse {
	return &SessionResponse{
		AccessToken: rm.Token,
		UserID:      rm.UserID,
		ExpiresIn:   int(rm.ExpiresIn.Seconds()),
	}
}
