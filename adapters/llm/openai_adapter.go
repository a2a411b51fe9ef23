package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/application/service"
	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

// placeholderKey satisfies the client for local OpenAI-compatible servers
// such as Ollama, which ignore the key.
const placeholderKey = "dummy-key"

type chatLLMAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewChatLLMAdapter talks to any OpenAI-compatible chat endpoint. An empty
// base URL with an API key targets api.openai.com.
func NewChatLLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.BaseURL == "" && cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM is not configured")
	}

	key := cfg.LLM.APIKey
	if key == "" {
		key = placeholderKey
	}
	clientCfg := openai.DefaultConfig(key)
	if cfg.LLM.BaseURL != "" {
		clientCfg.BaseURL = cfg.LLM.BaseURL
	}

	log.Info("Chat (LLM) Adapter initialized", zap.String("base_url", clientCfg.BaseURL), zap.String("model", cfg.LLM.Model))
	return &chatLLMAdapter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.LLM.Model,
		log:    log,
	}, nil
}

func (a *chatLLMAdapter) GenerateChatResponse(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
