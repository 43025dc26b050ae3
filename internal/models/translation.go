package models

type TranslateRequest struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required,oneof=en ja"`
}

// TranslateResponse always carries a usable TranslatedText; on failure it is
// the original text and Error/Details explain what went wrong.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
	Details        string `json:"details,omitempty"`
}
