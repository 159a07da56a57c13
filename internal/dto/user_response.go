// File: internal/dto/user_response.go
package dto

import (
	"time"

	"gethired/internal/model"
)

// UserResponse 使用者公開視圖，不含密碼雜湊
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`
	Email     string    `json:"email" example:"alice@example.com"`
	FullName  string    `json:"full_name" example:"Alice Chen"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	IsActive  bool      `json:"is_active" example:"true"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}
