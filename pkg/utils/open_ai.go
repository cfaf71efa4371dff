package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIChatModel = "gpt-4o-mini"

type OpenAIGenerationClient struct {
	client *openai.Client
	cfg    GenerationClientConfig
}

func NewOpenAIGenerationClient(cfg GenerationClientConfig) *OpenAIGenerationClient {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIChatModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIGenerationClient{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

func (c *OpenAIGenerationClient) Provider() string { return "openai" }

func (c *OpenAIGenerationClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
