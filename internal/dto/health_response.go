// File: internal/dto/health_response.go
package dto

// swagger:model dto.HealthResponse
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"GetHired API is running"`
	Details string `json:"details,omitempty" example:"database unreachable"`
}
