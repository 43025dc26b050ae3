package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	// Gemini's OpenAI-compatible endpoint.
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultGeminiModel = "gemini-2.5-flash"
)

// CompletionOptions are the per-call generation knobs; chat and translation
// use different settings against the same client.
type CompletionOptions struct {
	Temperature float32
	MaxTokens   int
}

// Completer is the contract both LLM-backed adapters consume. A nil Completer
// means no credential is configured and the adapter degrades to its fallback.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, opts CompletionOptions) (string, error)
}

type GeminiService struct {
	client *openai.Client
	model  string
}

func NewGeminiService(apiKey, model string) *GeminiService {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = geminiBaseURL

	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GeminiService) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, opts CompletionOptions) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return resp.Choices[0].Message.Content, nil
}
