// File: internal/model/user.go
package model

import "time"

// User 對應 users 資料表；PasswordHash 永不序列化
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	IsActive     bool      `db:"is_active" json:"is_active"`
}
