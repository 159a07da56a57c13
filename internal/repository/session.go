// File: internal/repository/session.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gethired/internal/database"
	"gethired/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepository 以 pgx 存取 user_sessions 資料表
type SessionRepository struct {
	db database.DB
}

func NewSessionRepository(db database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create 記錄一枚新簽發的令牌
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_sessions (id, user_id, token_id, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, is_active`,
		s.ID,
		s.UserID,
		s.TokenID,
		s.ExpiresAt,
	)
	if err := row.Scan(&s.CreatedAt, &s.IsActive); err != nil {
		return fmt.Errorf("CreateSession: %w", err)
	}
	return nil
}

// IsActive 令牌對應的 session 存在、未登出且未過期時回傳 true
func (r *SessionRepository) IsActive(ctx context.Context, tokenID string) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx,
		`SELECT is_active AND expires_at > now()
		 FROM user_sessions WHERE token_id = $1`,
		tokenID,
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("IsSessionActive: %w", err)
	}
	return active, nil
}

// Deactivate 登出時停用 session；重複呼叫不視為錯誤
func (r *SessionRepository) Deactivate(ctx context.Context, tokenID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE user_sessions SET is_active = FALSE WHERE token_id = $1`,
		tokenID,
	)
	if err != nil {
		return fmt.Errorf("DeactivateSession: %w", err)
	}
	return nil
}
