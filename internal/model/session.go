// File: internal/model/session.go
package model

import "time"

// Session 記錄每一枚已簽發的存取令牌 (以 token_id 對應 JWT 的 jti)
type Session struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	TokenID   string    `db:"token_id" json:"token_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}
