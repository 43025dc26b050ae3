package session

import (
	"sync"

	"github.com/soratabi/travel-assistant-backend/internal/models"
)

// Log is the ordered conversation for one session. Messages are appended and
// updated in place, never reordered or removed. Updates lock per call, so
// concurrent sweep results land atomically on their own message.
type Log struct {
	mu       sync.Mutex
	messages []models.Message
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(m models.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Messages returns a copy of the conversation in order.
func (l *Log) Messages() []models.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Update applies fn to the message with the given id under the lock and
// reports whether the id was found.
func (l *Log) Update(id string, fn func(*models.Message)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.messages {
		if l.messages[i].ID == id {
			fn(&l.messages[i])
			return true
		}
	}
	return false
}
