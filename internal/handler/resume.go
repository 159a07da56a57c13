// File: internal/handler/resume.go
package handler

import (
	"context"
	"io"
	"net/http"

	"gethired/internal/dto"
	"gethired/internal/middleware"
	"gethired/internal/resume"

	"github.com/labstack/echo/v4"
)

// ResumeAnalyzer 由 resume.Analyzer 實作
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, filename string, content io.Reader) (*resume.Result, error)
}

// AnalyzeResumeHandler 上傳履歷並取得建議
// @Summary     履歷分析
// @Description 不需登入；帶有效令牌時計入該使用者的統計。格式不支援或擷取不到文字時回傳 error 欄位
// @Tags        resume
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "履歷檔案 (.pdf .docx .doc .txt .jpg .jpeg .png)"
// @Success     200  {object} dto.ResumeResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     413  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /analyze_resume [post]
func AnalyzeResumeHandler(analyzer ResumeAnalyzer, usage UsageStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "file is required", Code: "ValidationError"})
		}
		src, err := fh.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		res, err := analyzer.Analyze(c.Request().Context(), fh.Filename, src)
		if err != nil {
			return err
		}
		if res.Error != "" {
			return c.JSON(http.StatusOK, dto.ResumeResponse{Error: res.Error})
		}

		if p := middleware.PrincipalFrom(c); p != nil {
			usage.RecordResumeAnalysis(p.User.ID)
		}
		return c.JSON(http.StatusOK, dto.ResumeResponse{Feedback: res.Feedback})
	}
}
