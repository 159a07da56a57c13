// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gethired/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL 未指定 TTL 時的存取令牌有效期
const DefaultTokenTTL = 30 * time.Minute

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// Claims JWT 負載：sub 為使用者 ID，jti 為令牌 ID
type Claims struct {
	jwt.RegisteredClaims
}

// IssuedToken 簽發結果
type IssuedToken struct {
	Token     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer 以 HS256 簽發與驗證存取令牌；金鑰於啟動時注入且不記錄於日誌
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL 預設有效期
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue 依使用者 ID 與 TTL 產生 JWT；ttl <= 0 時使用預設值
func (t *TokenIssuer) Issue(subject string, ttl time.Duration) (*IssuedToken, error) {
	if len(t.secret) == 0 {
		return nil, fmt.Errorf("token signing secret not set")
	}
	if subject == "" {
		return nil, fmt.Errorf("token subject is empty")
	}
	if ttl <= 0 {
		ttl = t.ttl
	}

	now := timeNow()
	out := &IssuedToken{
		TokenID:   newTokenID(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        out.TokenID,
			IssuedAt:  jwt.NewNumericDate(out.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(out.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return nil, err
	}
	out.Token = signed
	return out, nil
}

// Verify 驗證簽章與期限，不存取資料庫
// 過期回傳 apperr.ErrTokenExpired，其餘失敗回傳 apperr.ErrTokenInvalid
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, apperr.ErrTokenInvalid
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, apperr.ErrTokenInvalid
	}
	return claims, nil
}
