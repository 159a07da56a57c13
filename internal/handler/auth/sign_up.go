// File: internal/handler/auth/sign_up.go
package auth

import (
	"fmt"
	"net/http"

	"gethired/internal/dto"

	"github.com/labstack/echo/v4"
)

// SignUpHandler 註冊新帳號並回傳存取令牌
// @Summary     註冊
// @Description 建立帳號後直接登入，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.SignUpRequest true "註冊資料"
// @Success     200  {object} dto.TokenResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignUpHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignUpRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, fmt.Sprintf("無效的請求資料: %v", err))
		}
		if err := c.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		res, err := svc.SignUp(c.Request().Context(), req.Email, req.FullName, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tokenResponse(res))
	}
}
