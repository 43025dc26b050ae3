package models

type ChatRequest struct {
	Message             string           `json:"message" validate:"required"`
	WeatherData         *WeatherSnapshot `json:"weatherData,omitempty"`
	ConversationHistory []Message        `json:"conversationHistory,omitempty"`
	Language            string           `json:"language,omitempty" validate:"omitempty,oneof=en ja"`
}

// ChatResponse is success-shaped in mock mode too: Error and Message then
// carry the setup hint and MockResponse the canned reply.
type ChatResponse struct {
	Message      string `json:"message"`
	Error        string `json:"error,omitempty"`
	Mock         bool   `json:"mock,omitempty"`
	MockResponse string `json:"mockResponse,omitempty"`
}
