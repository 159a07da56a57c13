// File: internal/handler/search.go
package handler

import (
	"fmt"
	"net/http"

	"gethired/internal/apperr"
	"gethired/internal/dto"
	"gethired/internal/jobsearch"
	"gethired/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SearchHandler 職缺搜尋代理，上游失敗時回傳空陣列
// @Summary     搜尋職缺
// @Tags        jobs
// @Produce     json
// @Param       query    query    string true  "職稱或關鍵字"
// @Param       location query    string false "地點" default(India)
// @Success     200      {array}  model.Job
// @Failure     400      {object} dto.HTTPError
// @Failure     401      {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /search [get]
func SearchHandler(searcher jobsearch.Searcher, usage UsageStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := middleware.PrincipalFrom(c)
		if p == nil {
			return apperr.ErrUnauthorized
		}

		var req dto.SearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的查詢參數: %v", err), Code: "ValidationError"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error(), Code: "ValidationError"})
		}

		jobs := searcher.Search(c.Request().Context(), req.Query, req.Location)
		usage.RecordSearch(p.User.ID)
		return c.JSON(http.StatusOK, jobs)
	}
}
