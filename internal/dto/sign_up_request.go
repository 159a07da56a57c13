// File: internal/dto/sign_up_request.go
package dto

// swagger:model dto.SignUpRequest
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	FullName string `json:"full_name" validate:"required" example:"Alice Chen"`
	// 不設 required：空字串與過短密碼一樣由 AuthService 回報 WeakPassword
	Password string `json:"password" example:"Secret123"`
}
