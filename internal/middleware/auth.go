// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"strings"

	"gethired/internal/apperr"
	"gethired/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextPrincipalKey = "principal"

// Authenticator 由 service.AuthService 實作
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Principal, error)
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperr.ErrUnauthorized
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperr.ErrUnauthorized
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 驗證失敗時交給 ErrorHandler 回 401
func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			p, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(ContextPrincipalKey, p)
			return next(c)
		}
	}
}

// OptionalAuth 有合法令牌時設定 principal，否則以匿名身分繼續
func OptionalAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, err := bearerToken(c); err == nil {
				if p, err := a.Authenticate(c.Request().Context(), token); err == nil {
					c.Set(ContextPrincipalKey, p)
				}
			}
			return next(c)
		}
	}
}

// PrincipalFrom 未驗證時回傳 nil
func PrincipalFrom(c echo.Context) *service.Principal {
	p, _ := c.Get(ContextPrincipalKey).(*service.Principal)
	return p
}
