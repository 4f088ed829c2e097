// pkg/memcache/sessions.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRegistry is the server-side session table. A JWT alone is not an
// identity: its session id must still resolve here, which is what makes
// logout effective immediately.
type SessionRegistry interface {
	Put(sessionID uuid.UUID, userID uuid.UUID, ttl time.Duration)

	// Resolve returns the owning user for a live session,
	// uuid.Nil if the session is missing, revoked or expired.
	Resolve(sessionID uuid.UUID) uuid.UUID

	Revoke(sessionID uuid.UUID)
}

type sessionEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[uuid.UUID]sessionEntry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[uuid.UUID]sessionEntry),
	}
}

func (s *Sessions) Put(sessionID uuid.UUID, userID uuid.UUID, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Sessions) Resolve(sessionID uuid.UUID) uuid.UUID {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil
	}
	if time.Now().After(e.expiresAt) {
		// cleanup expired
		s.mu.Lock()
		delete(s.data, sessionID)
		s.mu.Unlock()
		return uuid.Nil
	}
	return e.userID
}

func (s *Sessions) Revoke(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
