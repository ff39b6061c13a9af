package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatRequest is one system+user exchange with fixed sampling settings.
type ChatRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// ChatClientInterface is a single-shot chat completion. Implementations
// must not retry.
type ChatClientInterface interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// OpenAIChatClient talks to any OpenAI compatible endpoint. Groq is the
// default base URL.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, baseURL, model string) *OpenAIChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIChatClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: status %d: %s", ErrLLMUnavailable, apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrLLMEmptyContent
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrLLMEmptyContent
	}
	return content, nil
}

// StripCodeFences drops a leading and trailing markdown fence and any prose
// around the outermost JSON object. String contents are left untouched.
func StripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```") {
		if nl := strings.IndexByte(response, '\n'); nl != -1 {
			response = response[nl+1:]
		} else {
			response = strings.TrimPrefix(response, "```")
		}
	}
	response = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(response), "```"))

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response[start:]
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
