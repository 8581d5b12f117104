package session

import (
	"sync"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// State is the session provider's two-state machine.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Observer is notified on every session state change.
type Observer func(state State, session *domain.Session)

// Provider is the application-scoped session state object, constructed once
// at startup and injected into everything that needs the current user.
// Components react to sign-in and sign-out through Subscribe instead of
// reading ambient global state.
type Provider struct {
	mu        sync.RWMutex
	current   *domain.Session
	observers []Observer
}

func NewProvider() *Provider {
	return &Provider{}
}

// State reports the current state and, when authenticated, the session.
func (p *Provider) State() (State, *domain.Session) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return Anonymous, nil
	}
	return Authenticated, p.current
}

// SetAuthenticated records a fresh session and notifies observers.
func (p *Provider) SetAuthenticated(session *domain.Session) {
	p.mu.Lock()
	p.current = session
	observers := append([]Observer(nil), p.observers...)
	p.mu.Unlock()

	for _, observe := range observers {
		observe(Authenticated, session)
	}
}

// SetAnonymous clears the session and notifies observers.
func (p *Provider) SetAnonymous() {
	p.mu.Lock()
	p.current = nil
	observers := append([]Observer(nil), p.observers...)
	p.mu.Unlock()

	for _, observe := range observers {
		observe(Anonymous, nil)
	}
}

// Subscribe registers an observer for future state changes.
func (p *Provider) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}
