// File: internal/dto/stats_response.go
package dto

import "time"

// swagger:model dto.StatsResponse
type StatsResponse struct {
	UserName        string    `json:"user_name" example:"Alice Chen"`
	TotalSearches   int64     `json:"total_searches" example:"0"`
	ResumesAnalyzed int64     `json:"resumes_analyzed" example:"0"`
	MemberSince     time.Time `json:"member_since" example:"2025-05-01T15:04:05Z"`
}
