package services

import (
	"context"
	"errors"
	"testing"
)

func TestTranslateWithoutCredentialPassesTextThrough(t *testing.T) {
	svc := NewTranslatorService(nil)

	resp, err := svc.Translate(context.Background(), "hello", "ja")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if resp.TranslatedText != "hello" {
		t.Errorf("Expected passthrough text %q, got %q", "hello", resp.TranslatedText)
	}
}

func TestTranslateValidation(t *testing.T) {
	svc := NewTranslatorService(nil)

	if _, err := svc.Translate(context.Background(), "  ", "ja"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText for blank text, got %v", err)
	}
	if _, err := svc.Translate(context.Background(), "hello", ""); !errors.Is(err, ErrMissingTargetLanguage) {
		t.Errorf("Expected ErrMissingTargetLanguage, got %v", err)
	}
}

func TestTranslateSuccessTrimsResult(t *testing.T) {
	llm := &fakeCompleter{reply: "  こんにちは  \n"}
	svc := NewTranslatorService(llm)

	resp, err := svc.Translate(context.Background(), "hello", "ja")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if resp.TranslatedText != "こんにちは" {
		t.Errorf("Expected trimmed translation, got %q", resp.TranslatedText)
	}
	if resp.Error != "" {
		t.Errorf("Expected no error on success, got %q", resp.Error)
	}
	if llm.gotOpts.Temperature != 0.3 || llm.gotOpts.MaxTokens != 2048 {
		t.Errorf("Unexpected completion options: %+v", llm.gotOpts)
	}
}

func TestTranslateUpstreamFailureKeepsOriginalText(t *testing.T) {
	svc := NewTranslatorService(&fakeCompleter{err: errors.New("quota exceeded")})

	resp, err := svc.Translate(context.Background(), "hello", "ja")
	if err != nil {
		t.Fatalf("Expected success-shaped result on upstream failure, got error %v", err)
	}
	if resp.TranslatedText != "hello" {
		t.Errorf("Expected original text as fallback, got %q", resp.TranslatedText)
	}
	if resp.Error == "" || resp.Details == "" {
		t.Errorf("Expected error detail on failure, got %+v", resp)
	}
}

func TestTranslateEmptyProviderReplyFallsBackToOriginal(t *testing.T) {
	svc := NewTranslatorService(&fakeCompleter{reply: "   "})

	resp, err := svc.Translate(context.Background(), "hello", "en")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if resp.TranslatedText != "hello" {
		t.Errorf("Expected original text when provider returns nothing, got %q", resp.TranslatedText)
	}
}
