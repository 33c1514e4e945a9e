package auth

import (
	"context"
	"sync"
	"time"
)

type memorySession struct {
	restaurantID string
	expiresAt    time.Time
}

// InMemorySessionStore keeps sessions in process memory.
// Used in tests and local runs without Redis.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *InMemorySessionStore) Save(
	_ context.Context,
	sessionID, restaurantID string,
	ttl time.Duration,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = memorySession{
		restaurantID: restaurantID,
		expiresAt:    time.Now().Add(ttl),
	}
	return nil
}

func (s *InMemorySessionStore) Resolve(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", ErrSessionNotFound
	}
	if time.Now().After(session.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	return session.restaurantID, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
