// File: internal/dto/search_request.go
package dto

// swagger:model dto.SearchRequest
type SearchRequest struct {
	Query    string `query:"query" validate:"required" example:"golang developer"`
	Location string `query:"location" example:"India"`
}
