// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message" example:"Email already registered"`
	// code 錯誤分類代碼
	Code string `json:"code,omitempty" example:"DuplicateEmail"`
}
