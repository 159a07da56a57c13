// File: internal/llm/openai.go
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIModel 使用 OpenAI (或相容閘道) 的 Responses API
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAI model 為空時使用 gpt-4o-mini
func NewOpenAI(apiKey, model, baseURL string, extra ...option.RequestOption) *OpenAIModel {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	opts = append(opts, extra...)
	client := openai.NewClient(opts...)
	if model == "" {
		model = string(shared.ChatModelGPT4oMini)
	}
	return &OpenAIModel{client: &client, model: model}
}

func (o *OpenAIModel) Provider() string { return "OpenAI" }

func (o *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(o.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}
	resp, err := o.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}
	content := resp.OutputText()
	if content == "" {
		return "", errors.New("empty response content")
	}
	return content, nil
}
