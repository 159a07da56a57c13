// File: internal/dto/token_response.go
package dto

// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string       `json:"token_type" example:"bearer"`
	ExpiresIn   int          `json:"expires_in" example:"1800"`
	User        UserResponse `json:"user"`
}
