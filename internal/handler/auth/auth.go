// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"time"

	"gethired/internal/dto"
	"gethired/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 service.AuthService 實作
type Service interface {
	SignUp(ctx context.Context, email, fullName, password string) (*service.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*service.AuthResult, error)
	Logout(ctx context.Context, p *service.Principal) error
}

var timeNow = time.Now

func tokenResponse(res *service.AuthResult) dto.TokenResponse {
	expiresIn := int(res.ExpiresAt.Sub(timeNow()).Round(time.Second).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	return dto.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		ExpiresIn:   expiresIn,
		User:        dto.NewUserResponse(res.User),
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: msg, Code: "ValidationError"})
}
