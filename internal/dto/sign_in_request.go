// File: internal/dto/sign_in_request.go
package dto

// swagger:model dto.SignInRequest
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123"`
}
