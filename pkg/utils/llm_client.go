package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged instruction handed to a model.
type ChatMessage struct {
	Role    string
	Content string
}

type GenerationRequest struct {
	Messages    []ChatMessage
	Temperature float32
}

// GenerationClientInterface is the external text-generation collaborator.
type GenerationClientInterface interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	Provider() string
}

type GenerationClientConfig struct {
	Provider string // "openai" | "gemini"
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewGenerationClient picks the provider implementation named in cfg.
func NewGenerationClient(ctx context.Context, cfg GenerationClientConfig) (GenerationClientInterface, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s api key is required", cfg.Provider)
	}

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIGenerationClient(cfg), nil
	case "gemini":
		client, err := NewGeminiGenerationClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
