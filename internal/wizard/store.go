package wizard

import (
	"sync"
	"time"
)

// Store keeps sessions in memory for their TTL. Nothing survives a restart.
type Store interface {
	Put(s *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]*Session
	ttl  time.Duration
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		data: make(map[string]*Session),
		ttl:  ttl,
	}
}

// Put stores a copy of s and refreshes its expiry. The TTL slides on every
// write: an active session never expires mid-use, CreatedAt only records when
// the wizard run began.
func (m *memoryStore) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := s.Clone()
	stored.ExpiresAt = time.Now().Add(m.ttl)
	m.data[stored.ID] = stored
}

// Get returns a private copy. Callers mutate it freely and persist edits
// with Put; concurrent requests for the same session never share state.
func (m *memoryStore) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.data, id) // cleanup expired
		return nil, false
	}
	return s.Clone(), true
}

func (m *memoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
}
