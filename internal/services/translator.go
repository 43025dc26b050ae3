package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/soratabi/travel-assistant-backend/internal/models"
)

var (
	ErrEmptyText             = errors.New("text is required")
	ErrMissingTargetLanguage = errors.New("target language is required")
)

// TranslatorService translates chat messages through the LLM. It never hard
// fails once input is valid: with no credential it passes the text through
// unchanged, and on upstream failure it returns the original text alongside
// the error detail, so the conversation never blocks on translation.
type TranslatorService struct {
	llm Completer
}

func NewTranslatorService(llm Completer) *TranslatorService {
	return &TranslatorService{llm: llm}
}

func (s *TranslatorService) Translate(ctx context.Context, text, targetLanguage string) (models.TranslateResponse, error) {
	if strings.TrimSpace(text) == "" {
		return models.TranslateResponse{}, ErrEmptyText
	}
	if targetLanguage == "" {
		return models.TranslateResponse{}, ErrMissingTargetLanguage
	}

	if s.llm == nil {
		return models.TranslateResponse{
			TranslatedText: text,
			Error:          "Gemini API key not configured",
		}, nil
	}

	prompt := fmt.Sprintf("Translate the following text to %s. Only provide the translation, no explanations or additional text:\n\n%s",
		languageName(targetLanguage), text)

	translated, err := s.llm.Complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}, CompletionOptions{
		Temperature: 0.3,
		MaxTokens:   2048,
	})
	if err != nil {
		return models.TranslateResponse{
			TranslatedText: text,
			Error:          "Failed to translate",
			Details:        err.Error(),
		}, nil
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		translated = text
	}
	return models.TranslateResponse{TranslatedText: translated}, nil
}
