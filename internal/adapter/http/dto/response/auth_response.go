package response

import (
	"time"

	"fukuro_studio/internal/usecase"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromAccessToken(t usecase.AccessToken) LoginResponse {
	return LoginResponse{AccessToken: t.Token, TokenType: "Bearer", ExpiresAt: t.ExpiresAt}
}
