package client

import "sync"

// Identity is the signed-in account as reported by the service.
type Identity struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the single source of truth for the current identity and
// token. Every authenticated request reads the token through it, so a
// token update is visible to all subsequent calls immediately.
// Subscribers are notified on every change, including sign-out.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *Identity
	subs  []func(*Identity)
}

func NewSession() *Session { return &Session{} }

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current identity, nil when signed out.
func (s *Session) User() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SignedIn reports whether a token is held.
func (s *Session) SignedIn() bool { return s.Token() != "" }

// Set stores a new token and identity and notifies subscribers.
func (s *Session) Set(token string, user Identity) {
	s.mu.Lock()
	s.token = token
	u := user
	s.user = &u
	subs := append([]func(*Identity){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(&u)
	}
}

// Clear signs out and notifies subscribers with a nil identity.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	subs := append([]func(*Identity){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers a callback invoked after every identity change.
// The callback receives the new identity, nil on sign-out.
func (s *Session) Subscribe(fn func(*Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
