// File: internal/llm/llm.go
package llm

import (
	"context"
	"fmt"

	"gethired/internal/config"
)

// Model 對單一 prompt 產生文字回覆
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Provider 錯誤訊息中顯示的供應商名稱
	Provider() string
}

// New 依 cfg.Provider 建立模型
func New(ctx context.Context, cfg config.LLMConfig) (Model, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
