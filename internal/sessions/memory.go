package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Sessions vanish on
// restart and are not shared across instances.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]int64
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]int64),
	}
}

// Create generates an opaque token bound to userID.
func (s *MemoryStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()

	return token, nil
}

// Lookup resolves a token back to a user id.
func (s *MemoryStore) Lookup(ctx context.Context, token string) (int64, error) {
	s.mu.RLock()
	userID, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}
