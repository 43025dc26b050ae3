package langpref

import "sync"

// Language is one of the two UI languages.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
)

// ChangeFunc receives the new language after a toggle.
type ChangeFunc func(Language)

type subscription struct {
	id int
	fn ChangeFunc
}

// Prefs holds the current UI language and its change subscribers. Toggling
// notifies every subscriber registered at toggle time, in registration order;
// subscribing the same callback twice yields two independent registrations.
type Prefs struct {
	mu      sync.Mutex
	current Language
	nextID  int
	subs    []subscription
}

func New(def Language) *Prefs {
	if def != Japanese {
		def = English
	}
	return &Prefs{current: def}
}

func (p *Prefs) Get() Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Toggle flips en<->ja, then invokes the subscribers with the new value. It
// iterates over a snapshot, so callbacks may subscribe or unsubscribe without
// skipping or double-invoking anyone in this round.
func (p *Prefs) Toggle() Language {
	p.mu.Lock()
	if p.current == English {
		p.current = Japanese
	} else {
		p.current = English
	}
	lang := p.current
	snapshot := make([]subscription, len(p.subs))
	copy(snapshot, p.subs)
	p.mu.Unlock()

	for _, s := range snapshot {
		s.fn(lang)
	}
	return lang
}

// Subscribe registers fn and returns a function that removes exactly this
// registration.
func (p *Prefs) Subscribe(fn ChangeFunc) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}
}
