// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gethired/internal/apperr"
	"gethired/internal/database"
	"gethired/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation PostgreSQL unique_violation
const uniqueViolation = "23505"

const userColumns = `id, email, full_name, password_hash, created_at, is_active`

// UserRepository 以 pgx 存取 users 資料表
type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail 找不到時回傳 (nil, nil)
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return u, nil
}

// FindByID 找不到時回傳 (nil, nil)
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return u, nil
}

// Create 新增使用者；email 重複時回傳 apperr.ErrDuplicateEmail
// first 不為 nil 時在同一個語句中寫入首個 session，兩筆資料同時成立或同時失敗
func (r *UserRepository) Create(ctx context.Context, u *model.User, first *model.Session) (*model.User, error) {
	var row pgx.Row
	if first == nil {
		row = r.db.QueryRow(ctx,
			`INSERT INTO users (id, email, full_name, password_hash)
			 VALUES ($1, $2, $3, $4)
			 RETURNING created_at, is_active`,
			u.ID,
			u.Email,
			u.FullName,
			u.PasswordHash,
		)
	} else {
		row = r.db.QueryRow(ctx,
			`WITH new_user AS (
				INSERT INTO users (id, email, full_name, password_hash)
				VALUES ($1, $2, $3, $4)
				RETURNING id, created_at, is_active
			), new_session AS (
				INSERT INTO user_sessions (id, user_id, token_id, expires_at)
				SELECT $5, id, $6, $7 FROM new_user
			)
			SELECT created_at, is_active FROM new_user`,
			u.ID,
			u.Email,
			u.FullName,
			u.PasswordHash,
			first.ID,
			first.TokenID,
			first.ExpiresAt,
		)
	}
	if err := row.Scan(&u.CreatedAt, &u.IsActive); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("CreateUser: %w", apperr.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	if first != nil {
		first.UserID = u.ID
		first.CreatedAt = u.CreatedAt
		first.IsActive = true
	}
	return u, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
