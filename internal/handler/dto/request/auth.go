package request

// CreateSessionRequest is posted by the sign-in page once the commerce API has issued a token
type CreateSessionRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	APIToken string `json:"api_token" binding:"required"`
}
