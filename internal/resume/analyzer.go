// File: internal/resume/analyzer.go
package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gethired/internal/apperr"
	"gethired/internal/llm"
	"gethired/internal/logging"
)

const (
	msgUnsupportedFormat = "Unsupported file format"
	msgExtractionFailed  = "Could not extract text from file"
)

// Result 只會設定 Feedback 或 Error 其中之一
type Result struct {
	Feedback string
	Error    string
}

// Analyzer 擷取履歷文字並交給語言模型產生建議
type Analyzer struct {
	extractor *Extractor
	model     llm.Model
	timeout   time.Duration
	logger    logging.Logger
}

func NewAnalyzer(extractor *Extractor, model llm.Model, timeout time.Duration, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Analyzer{extractor: extractor, model: model, timeout: timeout, logger: logger}
}

// Analyze 格式不支援與擷取不到文字以 Result.Error 回報；模型失敗寫入 Feedback
// 只有暫存檔等本地 I/O 錯誤會以 error 回傳
func (a *Analyzer) Analyze(ctx context.Context, filename string, content io.Reader) (*Result, error) {
	text, err := a.extractor.Extract(ctx, filename, content)
	switch {
	case errors.Is(err, apperr.ErrUnsupportedFormat):
		return &Result{Error: msgUnsupportedFormat}, nil
	case errors.Is(err, apperr.ErrExtractionFailed):
		a.logger.Warn(ctx, "resume text extraction failed", "filename", filename, "error", err)
		return &Result{Error: msgExtractionFailed}, nil
	case err != nil:
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return &Result{Error: msgExtractionFailed}, nil
	}

	return &Result{Feedback: a.feedback(ctx, text)}, nil
}

func (a *Analyzer) feedback(ctx context.Context, text string) string {
	if a.model == nil {
		return "Error analyzing resume: language model is not configured"
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	out, err := a.model.Generate(ctx, BuildPrompt(text))
	if err != nil {
		ext := externalError(a.model.Provider(), err)
		a.logger.Warn(ctx, "resume feedback generation failed", "code", apperr.Code(ext), "error", ext)
		return fmt.Sprintf("Error analyzing resume with %s: %v", a.model.Provider(), err)
	}
	return out
}

// externalError 將模型錯誤歸類為 apperr.ErrExternalService，保留原因
func externalError(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperr.ErrExternalService, provider, err)
}
