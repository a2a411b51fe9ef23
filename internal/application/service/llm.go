package service

import (
	"context"
)

// LLMService sends one prompt to a chat model and returns the raw reply.
type LLMService interface {
	GenerateChatResponse(ctx context.Context, prompt string) (string, error)
}
