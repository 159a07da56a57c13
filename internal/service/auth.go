// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"gethired/internal/apperr"
	"gethired/internal/logging"
	"gethired/internal/model"

	"github.com/google/uuid"
)

// MinPasswordLength 以 Unicode 字元計
const MinPasswordLength = 6

// TokenTypeBearer 回應中的 token_type
const TokenTypeBearer = "bearer"

var newUserID = uuid.NewString

// UserDirectory 使用者資料存取；查無資料回傳 (nil, nil)
// Create 的 first 不為 nil 時，使用者與首個 session 必須一併寫入或一併失敗
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, u *model.User, first *model.Session) (*model.User, error)
}

// SessionStore 令牌登記簿，logout 時停用對應 jti
type SessionStore interface {
	Create(ctx context.Context, s *model.Session) error
	IsActive(ctx context.Context, tokenID string) (bool, error)
	Deactivate(ctx context.Context, tokenID string) error
}

// PasswordHasher 由 CredentialHasher 實作
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// AuthResult 註冊 / 登入成功後的回傳
type AuthResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *model.User
}

// Principal 已驗證的請求者
type Principal struct {
	User      *model.User
	TokenID   string
	ExpiresAt time.Time
}

// AuthService 串接 UserDirectory / CredentialHasher / TokenIssuer
type AuthService struct {
	users          UserDirectory
	sessions       SessionStore
	hasher         PasswordHasher
	tokens         *TokenIssuer
	revokeOnLogout bool
	logger         logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AuthOption 調整 AuthService 行為
type AuthOption func(*AuthService)

// WithSessions 啟用令牌登記簿；revoke 為 true 時 Authenticate 會拒絕已登出的令牌
func WithSessions(store SessionStore, revoke bool) AuthOption {
	return func(s *AuthService) {
		s.sessions = store
		s.revokeOnLogout = revoke
	}
}

// WithLogger 設定日誌
func WithLogger(l logging.Logger) AuthOption {
	return func(s *AuthService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewAuthService(users UserDirectory, hasher PasswordHasher, tokens *TokenIssuer, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp 建立帳號並直接簽發令牌
// 先檢查 email 是否已存在，再檢查密碼長度
func (s *AuthService) SignUp(ctx context.Context, email, fullName, password string) (*AuthResult, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("SignUp: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, apperr.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("SignUp: %w", err)
	}

	// 令牌先簽好，寫入只有一次
	userID := newUserID()
	tok, err := s.tokens.Issue(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("IssueToken: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{
		ID:           userID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
	}, s.sessionFor(userID, tok))
	if err != nil {
		// 併發註冊由唯一索引擋下
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			return nil, apperr.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("SignUp: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return newAuthResult(tok, user), nil
}

// SignIn 帳號不存在與密碼錯誤回傳相同錯誤
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("SignIn: %w", err)
	}
	if user == nil {
		// 讓不存在的帳號也花費一次 bcrypt 比對的時間
		s.hasher.Verify(password, s.placeholderHash())
		return nil, apperr.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperr.ErrAccountDisabled
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)
	return s.issue(ctx, user)
}

// Authenticate 由 bearer token 取得目前使用者
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, apperr.ErrUnauthorized
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrUnauthorized, err)
	}

	if s.sessions != nil && s.revokeOnLogout {
		active, err := s.sessions.IsActive(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("Authenticate: %w", err)
		}
		if !active {
			return nil, apperr.ErrUnauthorized
		}
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrUnauthorized
	}

	p := &Principal{User: user, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

// Logout 停用令牌登記；未啟用登記簿時只是 no-op，由客戶端丟棄令牌
func (s *AuthService) Logout(ctx context.Context, p *Principal) error {
	if s.sessions == nil || p == nil || p.TokenID == "" {
		return nil
	}
	if err := s.sessions.Deactivate(ctx, p.TokenID); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	s.logger.Info(ctx, "user logged out", "user_id", p.User.ID)
	return nil
}

func (s *AuthService) issue(ctx context.Context, user *model.User) (*AuthResult, error) {
	tok, err := s.tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("IssueToken: %w", err)
	}
	if sess := s.sessionFor(user.ID, tok); sess != nil {
		if err := s.sessions.Create(ctx, sess); err != nil {
			return nil, fmt.Errorf("RecordSession: %w", err)
		}
	}
	return newAuthResult(tok, user), nil
}

// sessionFor 未啟用登記簿時回傳 nil
func (s *AuthService) sessionFor(userID string, tok *IssuedToken) *model.Session {
	if s.sessions == nil {
		return nil
	}
	return &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenID:   tok.TokenID,
		CreatedAt: tok.IssuedAt,
		ExpiresAt: tok.ExpiresAt,
		IsActive:  true,
	}
}

func newAuthResult(tok *IssuedToken, user *model.User) *AuthResult {
	return &AuthResult{
		AccessToken: tok.Token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   tok.ExpiresAt,
		User:        user,
	}
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}
