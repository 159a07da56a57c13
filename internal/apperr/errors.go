// File: internal/apperr/errors.go
package apperr

import "errors"

var (
	// 註冊 / 登入
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountDisabled    = errors.New("account is deactivated")

	// 令牌驗證
	ErrUnauthorized = errors.New("could not validate credentials")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// 履歷分析
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("could not extract text from file")

	// 外部服務
	ErrExternalService = errors.New("external service error")
)

// Code 回傳錯誤在 API 回應中使用的穩定代碼
func Code(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return "DuplicateEmail"
	case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrEmptyPassword):
		return "WeakPassword"
	case errors.Is(err, ErrInvalidCredentials):
		return "InvalidCredentials"
	case errors.Is(err, ErrAccountDisabled):
		return "AccountDisabled"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return "Unauthorized"
	case errors.Is(err, ErrUnsupportedFormat):
		return "UnsupportedFormat"
	case errors.Is(err, ErrExtractionFailed):
		return "ExtractionFailed"
	case errors.Is(err, ErrExternalService):
		return "ExternalServiceError"
	default:
		return "InternalError"
	}
}
