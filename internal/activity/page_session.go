package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// PageSession holds the entry time of the page a caller is on. Each
// caller owns its own session, so concurrent pages never share state.
type PageSession struct {
	id string

	mu        sync.Mutex
	page      string
	enteredAt time.Time
	entered   bool
}

// NewPageSession creates an empty session.
func NewPageSession() *PageSession {
	return &PageSession{id: uuid.NewString()}
}

// ID identifies the session in logs.
func (s *PageSession) ID() string {
	return s.id
}

// Page returns the page of the current visit, or "" if none.
func (s *PageSession) Page() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Active reports whether a view has been recorded and not yet left.
func (s *PageSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered
}

func (s *PageSession) enter(page string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
	s.enteredAt = at
	s.entered = true
}

func (s *PageSession) leave() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entered {
		return time.Time{}, false
	}
	at := s.enteredAt
	s.page = ""
	s.enteredAt = time.Time{}
	s.entered = false
	return at, true
}
