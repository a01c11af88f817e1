// Package session keeps chat intake sessions between turns, in process memory
// or in Redis. Both stores expire idle sessions after a TTL and keep sessions
// as encoded JSON so callers never share state with the store.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"
)

type entry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.IIntakeSessionStore = (*MemoryStore)(nil)

// NewMemoryStore starts a cleanup loop that stops with ctx.
func NewMemoryStore(ctx context.Context, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{items: make(map[string]entry), ttl: ttl, now: time.Now}
	go s.cleanup(ctx)
	return s
}

func (s *MemoryStore) Save(_ context.Context, session entities.IntakeSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.ID] = entry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (entities.IntakeSession, error) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok || s.now().After(e.expiresAt) {
		return entities.IntakeSession{}, nil
	}

	var session entities.IntakeSession
	if err := json.Unmarshal(e.raw, &session); err != nil {
		return entities.IntakeSession{}, err
	}
	return session, nil
}

// Len reports the number of stored (possibly expired) sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryStore) cleanup(ctx context.Context) {
	interval := s.ttl
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evict()
		}
	}
}

func (s *MemoryStore) evict() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
