// File: internal/llm/gemini.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var newGenAIClient = genai.NewClient

// GeminiModel 透過 Gemini API 的 generateContent 產生回覆
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGemini baseURL 不為空時覆寫 API 位址
func NewGemini(ctx context.Context, apiKey, model, baseURL string) (*GeminiModel, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := newGenAIClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("NewGemini: %w", err)
	}
	return &GeminiModel{client: client, model: strings.TrimPrefix(model, "models/")}, nil
}

func (g *GeminiModel) Provider() string { return "Gemini" }

func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
		// 只取第一個有內容的候選
		if sb.Len() > 0 {
			break
		}
	}
	if sb.Len() == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("empty response content")
	}
	return sb.String(), nil
}
