package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClientInterface on Google's Gemini models.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrLLMUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrLLMEmptyContent
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrLLMEmptyContent
	}
	return sb.String(), nil
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
