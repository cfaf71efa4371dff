package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerationClient implements GenerationClientInterface using Google's Gemini models
type GeminiGenerationClient struct {
	client *genai.Client
	cfg    GenerationClientConfig
}

func NewGeminiGenerationClient(ctx context.Context, cfg GenerationClientConfig) (*GeminiGenerationClient, error) {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{client: client, cfg: cfg}, nil
}

func (c *GeminiGenerationClient) Provider() string { return "gemini" }

func (c *GeminiGenerationClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	m := c.client.GenerativeModel(c.cfg.Model)
	m.SetTemperature(req.Temperature)

	var system []genai.Part
	var turns []*genai.Content
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, genai.Text(msg.Content))
		case RoleAssistant:
			turns = append(turns, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			turns = append(turns, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}
	if len(turns) == 0 {
		return "", fmt.Errorf("gemini: no user message")
	}
	if len(system) > 0 {
		m.SystemInstruction = &genai.Content{Parts: system}
	}

	cs := m.StartChat()
	cs.History = turns[:len(turns)-1]
	resp, err := cs.SendMessage(ctx, turns[len(turns)-1].Parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no content")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
