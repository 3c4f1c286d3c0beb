package session

import (
	"context"
	"sync"
	"time"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// MemoryStore keeps sessions in process memory. It backs development setups
// without Redis; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memorySession
	now      func() time.Time
}

type memorySession struct {
	pair      domain.TokenPair
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (domain.TokenPair, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return domain.TokenPair{}, domain.ErrSessionNotFound
	}
	if s.now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return domain.TokenPair{}, domain.ErrSessionNotFound
	}
	return sess.pair, nil
}

func (s *MemoryStore) Save(_ context.Context, sid string, pair domain.TokenPair) error {
	s.mu.Lock()
	s.sessions[sid] = memorySession{pair: pair, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
