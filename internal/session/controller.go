package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soratabi/travel-assistant-backend/internal/langpref"
	"github.com/soratabi/travel-assistant-backend/internal/models"
	"github.com/soratabi/travel-assistant-backend/internal/services"
)

var ErrEmptyInput = errors.New("input is empty")

// ChatProvider is what the controller needs from the chat adapter.
type ChatProvider interface {
	Respond(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Translator is what the controller needs from the translation adapter.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (models.TranslateResponse, error)
}

// WeatherFetcher is what the controller needs from the weather adapter.
type WeatherFetcher interface {
	Fetch(ctx context.Context, q services.WeatherQuery) (*models.WeatherSnapshot, bool, error)
}

// Controller wires user actions to the adapters and owns the conversation log,
// the language preference store and the current weather snapshot for one
// session. Each chat turn runs Idle -> Submitting -> Settled -> Idle.
type Controller struct {
	log        *Log
	prefs      *langpref.Prefs
	chat       ChatProvider
	translator Translator
	weather    WeatherFetcher

	mu          sync.Mutex
	snapshot    *models.WeatherSnapshot
	submitting  bool
	translating bool

	unsubscribe func()
}

func NewController(prefs *langpref.Prefs, chat ChatProvider, translator Translator, weather WeatherFetcher) *Controller {
	c := &Controller{
		log:        NewLog(),
		prefs:      prefs,
		chat:       chat,
		translator: translator,
		weather:    weather,
	}
	// A toggle during an in-flight sweep does not cancel it; both apply as
	// they arrive, last write wins per message. Known limitation.
	c.unsubscribe = prefs.Subscribe(func(lang langpref.Language) {
		go c.Retranslate(context.Background(), lang)
	})
	return c
}

// Close detaches the controller from the preference store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

func (c *Controller) Log() *Log { return c.log }

func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Controller) Translating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.translating
}

// Weather returns the currently held snapshot, or nil.
func (c *Controller) Weather() *models.WeatherSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return nil
	}
	snap := *c.snapshot
	return &snap
}

// SetWeather replaces the held snapshot wholesale.
func (c *Controller) SetWeather(snap *models.WeatherSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snap
}

// RefreshWeather fetches current conditions and, on success, replaces the held
// snapshot. Mock results count as success.
func (c *Controller) RefreshWeather(ctx context.Context, q services.WeatherQuery) (*models.WeatherSnapshot, error) {
	snap, _, err := c.weather.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	c.SetWeather(snap)
	return snap, nil
}

// Send appends the user message, asks the chat adapter for a reply with the
// weather snapshot and language hint folded in, and appends the assistant
// message. On adapter failure it appends a localized apology instead; either
// way the conversation grows by exactly two and the controller returns to
// Idle. Only empty input is an error.
func (c *Controller) Send(ctx context.Context, text string) (models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Message{}, ErrEmptyInput
	}

	c.setSubmitting(true)
	defer c.setSubmitting(false)

	lang := c.prefs.Get()
	history := c.log.Messages()

	userMsg := models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   trimmed,
		Timestamp: time.Now(),
	}
	c.log.Append(userMsg)

	if needsAutoTranslate(trimmed, lang) {
		go c.translateMessage(context.Background(), userMsg.ID, trimmed, lang)
	}

	outbound := trimmed
	snap := c.Weather()
	if snap != nil {
		outbound += fmt.Sprintf("\n\nCurrent weather in %s: %d°C, %s.", snap.Location, snap.Temperature, snap.Condition)
	}

	reply := models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Timestamp: time.Now(),
	}

	resp, err := c.chat.Respond(ctx, models.ChatRequest{
		Message:             outbound,
		WeatherData:         snap,
		ConversationHistory: history,
		Language:            string(lang),
	})
	switch {
	case err != nil:
		log.Printf("chat request failed: %v", err)
		reply.Content = apology(lang)
	case resp.Mock:
		reply.Content = resp.MockResponse
	default:
		reply.Content = resp.Message
	}

	c.log.Append(reply)
	return reply, nil
}

// Retranslate sweeps the whole conversation into lang: one translation per
// message, all in flight at once, each result applied to its own message as it
// settles. The translating flag stays set until every call has settled.
func (c *Controller) Retranslate(ctx context.Context, lang langpref.Language) {
	msgs := c.log.Messages()
	if len(msgs) == 0 {
		return
	}

	c.setTranslating(true)
	defer c.setTranslating(false)

	var wg sync.WaitGroup
	for _, m := range msgs {
		source := m.OriginalContent
		if source == "" {
			source = m.Content
		}
		wg.Add(1)
		go func(id, source string) {
			defer wg.Done()
			c.translateMessage(ctx, id, source, lang)
		}(m.ID, source)
	}
	wg.Wait()
}

func (c *Controller) translateMessage(ctx context.Context, id, source string, lang langpref.Language) {
	res, err := c.translator.Translate(ctx, source, string(lang))
	if err != nil {
		log.Printf("translate message %s: %v", id, err)
		return
	}
	c.log.Update(id, func(m *models.Message) {
		if m.OriginalContent == "" {
			m.OriginalContent = source
		}
		m.TranslatedContent = res.TranslatedText
		m.Content = res.TranslatedText
	})
}

// needsAutoTranslate reports whether a just-sent message should be translated
// into the active language: Japanese UI with no Japanese script in the text,
// or English UI with Japanese script present.
func needsAutoTranslate(text string, lang langpref.Language) bool {
	switch lang {
	case langpref.Japanese:
		return !langpref.ContainsScript(text, "japanese")
	case langpref.English:
		return langpref.ContainsScript(text, "japanese")
	}
	return false
}

func apology(lang langpref.Language) string {
	if lang == langpref.Japanese {
		return "申し訳ありません。エラーが発生しました。もう一度お試しください。"
	}
	return "Sorry, I encountered an error. Please try again."
}

func (c *Controller) setSubmitting(v bool) {
	c.mu.Lock()
	c.submitting = v
	c.mu.Unlock()
}

func (c *Controller) setTranslating(v bool) {
	c.mu.Lock()
	c.translating = v
	c.mu.Unlock()
}
