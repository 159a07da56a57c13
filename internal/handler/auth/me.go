// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"gethired/internal/apperr"
	"gethired/internal/dto"
	"gethired/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者
// @Summary     取得當前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		p := middleware.PrincipalFrom(c)
		if p == nil {
			return apperr.ErrUnauthorized
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(p.User))
	}
}

// LogoutHandler 停用目前的令牌
// @Summary     登出
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/logout [post]
func LogoutHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := middleware.PrincipalFrom(c)
		if p == nil {
			return apperr.ErrUnauthorized
		}
		if err := svc.Logout(c.Request().Context(), p); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
	}
}
