package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/soratabi/travel-assistant-backend/internal/models"
)

var ErrEmptyMessage = errors.New("message is required")

const geminiSetupHint = "Please add GEMINI_API_KEY to your .env file. Get your key from https://aistudio.google.com/app/apikey"

// ChatService generates travel-assistant replies. With a nil Completer it
// answers from the local keyword classifier instead of calling the provider.
type ChatService struct {
	llm Completer
}

func NewChatService(llm Completer) *ChatService {
	return &ChatService{llm: llm}
}

func (s *ChatService) Respond(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if s.llm == nil {
		return &models.ChatResponse{
			Error:        "Gemini API key not configured",
			Message:      geminiSetupHint,
			Mock:         true,
			MockResponse: MockResponse(message, req.WeatherData),
		}, nil
	}

	reply, err := s.llm.Complete(ctx, buildChatMessages(message, req), CompletionOptions{
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = "Sorry, I could not generate a response."
	}

	return &models.ChatResponse{Message: reply}, nil
}

func buildChatMessages(message string, req models.ChatRequest) []openai.ChatCompletionMessage {
	msgs := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: buildTravelPrompt(req.WeatherData, req.Language),
		},
	}
	for _, m := range req.ConversationHistory {
		role := openai.ChatMessageRoleUser
		if m.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
}

func buildTravelPrompt(weather *models.WeatherSnapshot, language string) string {
	var b strings.Builder

	b.WriteString(`You are a friendly and knowledgeable travel assistant AI. Your role is to help users plan trips, suggest destinations, recommend activities, and provide travel advice.

Key responsibilities:
- Suggest travel destinations based on user preferences
- Recommend activities, restaurants, and attractions
- Provide practical travel tips and advice
- Consider weather conditions when making suggestions
- Be enthusiastic and inspiring about travel

`)

	if weather != nil {
		fmt.Fprintf(&b, `Current weather information:
- Location: %s
- Temperature: %d°C (feels like %d°C)
- Condition: %s
- Humidity: %d%%
- Wind Speed: %.1f m/s

Use this weather information to provide relevant travel suggestions.

`, weather.Location, weather.Temperature, weather.FeelsLike, weather.Description, weather.Humidity, weather.WindSpeed)
	}

	b.WriteString("Always be helpful, friendly, and provide specific, actionable recommendations. Keep responses concise but informative.")

	if language != "" {
		fmt.Fprintf(&b, " Respond exclusively in %s.", languageName(language))
	}

	return b.String()
}

func languageName(code string) string {
	if code == "ja" {
		return "Japanese"
	}
	return "English"
}

// MockResponse classifies the user text into weather/travel/food and returns
// a canned reply, with a generic fallback for everything else. Keywords cover
// English and Japanese tokens.
func MockResponse(message string, weather *models.WeatherSnapshot) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "weather") || strings.Contains(lower, "天気") {
		if weather != nil {
			return fmt.Sprintf("Based on the current weather in %s (%d°C, %s), I'd recommend some great travel activities! The conditions are perfect for exploring outdoor attractions. Would you like suggestions for specific activities or destinations?",
				weather.Location, weather.Temperature, weather.Description)
		}
		return "I'd be happy to help with weather-based travel recommendations! Please allow me to check the current weather first."
	}

	if strings.Contains(lower, "travel") || strings.Contains(lower, "trip") || strings.Contains(lower, "旅行") {
		return "I'd love to help you plan your trip! Japan has amazing destinations like Tokyo, Kyoto, Osaka, and Hokkaido. Each offers unique experiences - from modern cityscapes to traditional temples, delicious cuisine to natural hot springs. What kind of experience are you looking for?"
	}

	if strings.Contains(lower, "food") || strings.Contains(lower, "restaurant") || strings.Contains(lower, "食べ物") {
		return "Japan has incredible food! I recommend trying authentic ramen, sushi, tempura, and okonomiyaki. For a unique experience, visit Tsukiji Outer Market in Tokyo or explore the street food in Osaka's Dotonbori district. What type of cuisine interests you most?"
	}

	return "I'm here to help you plan an amazing trip! I can suggest destinations, activities, restaurants, and provide travel tips. What would you like to know about?"
}
