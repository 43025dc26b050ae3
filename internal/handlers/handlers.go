package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/soratabi/travel-assistant-backend/internal/models"
	"github.com/soratabi/travel-assistant-backend/internal/services"
)

// ChatResponder, Translator and WeatherFetcher are the adapter contracts the
// handlers call through, so tests can swap in fakes.
type ChatResponder interface {
	Respond(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (models.TranslateResponse, error)
}

type WeatherFetcher interface {
	Fetch(ctx context.Context, q services.WeatherQuery) (*models.WeatherSnapshot, bool, error)
}

type Handler struct {
	chat       ChatResponder
	translator Translator
	weather    WeatherFetcher
}

func New(chat ChatResponder, translator Translator, weather WeatherFetcher) *Handler {
	return &Handler{
		chat:       chat,
		translator: translator,
		weather:    weather,
	}
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
