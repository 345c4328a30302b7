// Package session manages the lifecycle of screening conversations:
// unique ids, single-utterance serialization, and inactivity expiry.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/conversation"
)

// ErrExpired is returned when a session's inactivity window has lapsed.
// Expired sessions cannot be resumed; the caller starts a fresh one.
var ErrExpired = fmt.Errorf("session expired")

// Session wraps one conversation controller with identity and expiry.
// The mutex guarantees one utterance is fully processed before the next
// is accepted.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu           sync.Mutex
	controller   *conversation.Controller
	lastActivity time.Time
	timeout      time.Duration
}

// newSession creates a session around a fresh controller.
func newSession(controller *conversation.Controller, timeout time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		controller:   controller,
		lastActivity: now,
		timeout:      timeout,
	}
}

// Greeting returns the opening assistant message.
func (s *Session) Greeting() string {
	return s.controller.Greeting()
}

// HandleMessage serializes one utterance through the controller,
// refreshing the inactivity window on success.
func (s *Session) HandleMessage(ctx context.Context, input string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expiredLocked() {
		return "", ErrExpired
	}
	reply, err := s.controller.HandleMessage(ctx, input)
	if err != nil {
		return "", err
	}
	s.lastActivity = time.Now()
	return reply, nil
}

// Expired reports whether the inactivity window has lapsed.
func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiredLocked()
}

func (s *Session) expiredLocked() bool {
	return time.Since(s.lastActivity) > s.timeout
}

// Done reports whether the conversation has completed.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Done()
}

// Controller exposes the underlying conversation for read-side export.
// Callers must not feed it utterances directly.
func (s *Session) Controller() *conversation.Controller {
	return s.controller
}

// Manager tracks independent candidate sessions. Sessions share no
// mutable state with each other.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	newController func() *conversation.Controller
	timeout       time.Duration
	log           *zap.Logger
}

// NewManager creates a session registry. newController builds an
// independent conversation for each session.
func NewManager(newController func() *conversation.Controller, timeout time.Duration, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions:      make(map[uuid.UUID]*Session),
		newController: newController,
		timeout:       timeout,
		log:           log,
	}
}

// Create starts a new session and returns it.
func (m *Manager) Create() *Session {
	session := newSession(m.newController(), m.timeout)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.log.Info("session created", zap.String("session_id", session.ID.String()))
	return session
}

// Get returns the session for an id. Expired sessions are evicted and
// reported via ErrExpired.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if session.Expired() {
		m.Remove(id)
		return nil, ErrExpired
	}
	return session, nil
}

// Remove evicts a session from the registry.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	m.log.Info("session removed", zap.String("session_id", id.String()))
}

// Sweep evicts every expired session and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.Expired() {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("expired sessions swept", zap.Int("removed", removed))
	}
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
