package llm

import (
	"context"
	"net/http"

	"notepad-ai/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewOpenAIProvider creates a provider authenticated with apiKey.
func NewOpenAIProvider(apiKey string, cfg config.OpenAIConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// NewOpenAIFactory returns a Factory producing OpenAI providers for cfg.
func NewOpenAIFactory(cfg config.OpenAIConfig) Factory {
	return func(apiKey string) Provider {
		return NewOpenAIProvider(apiKey, cfg)
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.maxTokens
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.temperature
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(temperature),
	})
	if err != nil {
		return nil, err
	}

	out := &CompletionResponse{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}
