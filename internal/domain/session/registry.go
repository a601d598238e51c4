package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps live session IDs to their stores so the HTTP layer can
// resolve the current identity on every request instead of trusting a
// cached copy. Logout removes the entry, which invalidates outstanding
// tokens carrying that session ID.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: map[string]*Store{}}
}

func (r *Registry) Create(role, name string) (string, Session, error) {
	store := NewStore()
	sess, err := store.Login(role, name)
	if err != nil {
		return "", Session{}, err
	}
	id := uuid.NewString()
	r.mu.Lock()
	r.stores[id] = store
	r.mu.Unlock()
	return id, sess, nil
}

func (r *Registry) Current(id string) (Session, bool) {
	r.mu.RLock()
	store, ok := r.stores[id]
	r.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	return store.Current(), true
}

// Logout clears and forgets the session. Unknown IDs are a no-op.
func (r *Registry) Logout(id string) {
	r.mu.Lock()
	if store, ok := r.stores[id]; ok {
		store.Logout()
		delete(r.stores, id)
	}
	r.mu.Unlock()
}
