package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soratabi/travel-assistant-backend/internal/config"
	"github.com/soratabi/travel-assistant-backend/internal/handlers"
	"github.com/soratabi/travel-assistant-backend/internal/services"
)

func main() {
	cfg := config.Load()

	// Without a Gemini key the chat and translation services run in
	// mock/passthrough mode instead of failing.
	var llm services.Completer
	if cfg.GeminiAPIKey != "" {
		llm = services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	h := handlers.New(
		services.NewChatService(llm),
		services.NewTranslatorService(llm),
		services.NewWeatherService(cfg.WeatherAPIKey, cfg.WeatherProvider),
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Routes
	api := app.Group("/api")
	api.Post("/chat", h.Chat)
	api.Post("/translate", h.Translate)
	api.Get("/weather", h.Weather)

	log.Printf("GEMINI_API_KEY present: %v", cfg.GeminiAPIKey != "")
	log.Printf("WEATHER_API_KEY present: %v (provider: %s)", cfg.WeatherAPIKey != "", cfg.WeatherProvider)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
