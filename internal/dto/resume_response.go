// File: internal/dto/resume_response.go
package dto

// ResumeResponse 僅會帶 feedback 或 error 其中之一
// swagger:model dto.ResumeResponse
type ResumeResponse struct {
	Feedback string `json:"feedback,omitempty" example:"1. Add a summary section ..."`
	Error    string `json:"error,omitempty" example:"Unsupported file format"`
}
