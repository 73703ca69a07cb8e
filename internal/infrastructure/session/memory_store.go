// Package session provides the workflow session stores: an in-process store
// for single-instance deployments and a Redis store for anything else.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/domain"
)

var _ billing.SessionStore = (*MemoryStore)(nil)

// MemoryStore keeps workflow sessions in process memory with a TTL. Fits a
// store running one API instance; a restart drops open drafts, never
// finalized invoices.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   billing.Session
	expiresAt time.Time
}

// NewMemoryStore builds the store. ttl bounds how long an abandoned draft
// survives.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

// Put stores a copy of the session and refreshes its TTL.
func (s *MemoryStore) Put(_ context.Context, sess *billing.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memoryEntry{
		session:   *sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get returns a copy of the session, or ErrSessionNotFound for unknown or
// expired ids. Expired entries are reaped lazily on access.
func (s *MemoryStore) Get(_ context.Context, id string) (*billing.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	copied := entry.session
	return &copied, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
