// File: internal/handler/auth/sign_in.go
package auth

import (
	"fmt"
	"net/http"

	"gethired/internal/dto"

	"github.com/labstack/echo/v4"
)

// SignInHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入
// @Description 帳號不存在與密碼錯誤回傳相同訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.SignInRequest true "登入資料"
// @Success     200  {object} dto.TokenResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/signin [post]
func SignInHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignInRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, fmt.Sprintf("無效的請求資料: %v", err))
		}
		if err := c.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		res, err := svc.SignIn(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tokenResponse(res))
	}
}
