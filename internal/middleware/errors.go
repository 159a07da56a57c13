// File: internal/middleware/errors.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"gethired/internal/apperr"
	"gethired/internal/dto"
	"gethired/internal/logging"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// errorStatus 服務層錯誤對應的 HTTP 狀態與對外訊息
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, apperr.ErrWeakPassword), errors.Is(err, apperr.ErrEmptyPassword):
		return http.StatusBadRequest, "Password must be at least 6 characters long"
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, apperr.ErrAccountDisabled):
		return http.StatusUnauthorized, "Account is deactivated"
	case errors.Is(err, apperr.ErrUnauthorized), errors.Is(err, apperr.ErrTokenInvalid), errors.Is(err, apperr.ErrTokenExpired):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, apperr.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Unsupported file format"
	case errors.Is(err, apperr.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "Could not extract text from file"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func isTokenFailure(err error) bool {
	return errors.Is(err, apperr.ErrUnauthorized) ||
		errors.Is(err, apperr.ErrTokenInvalid) ||
		errors.Is(err, apperr.ErrTokenExpired)
}

// ErrorHandler 取代 echo 預設的 HTTPErrorHandler，統一輸出 dto.HTTPError
// 5xx 只記錄細節，不回傳給客戶端
func ErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status int
			body   dto.HTTPError
		)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body.Message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				err = he.Internal
			}
		} else {
			status, body.Message = errorStatus(err)
			body.Code = apperr.Code(err)
		}

		if status == http.StatusUnauthorized && (he != nil || isTokenFailure(err)) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		if status >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			body.Message = internalErrorMessage
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Warn(c.Request().Context(), "write error response failed", "error", writeErr)
		}
	}
}
