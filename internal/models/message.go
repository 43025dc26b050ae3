package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation. Content always shows the latest
// successful translation when one exists for the active language, otherwise
// OriginalContent.
type Message struct {
	ID                string    `json:"id"`
	Role              Role      `json:"role"`
	Content           string    `json:"content"`
	OriginalContent   string    `json:"originalContent,omitempty"`
	TranslatedContent string    `json:"translatedContent,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}
