package leave

import (
	"fmt"
	"sync"
	"time"
)

// Store keeps leave requests in memory. All status changes go through
// TransitionFromPending so the pending check and the write happen under
// one lock acquisition.
type Store struct {
	mu       sync.RWMutex
	requests map[string]*Request
	order    []string
}

func NewStore() *Store {
	return &Store{requests: map[string]*Request{}}
}

func (s *Store) Insert(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := req
	s.requests[req.ID] = &stored
	s.order = append(s.order, req.ID)
}

func (s *Store) Get(id string) (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return Request{}, false
	}
	return *req, true
}

// List returns all requests, newest first. An empty requesterID returns
// every request.
func (s *Store) List(requesterID string) []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Request, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		req := s.requests[s.order[i]]
		if requesterID != "" && req.RequesterID != requesterID {
			continue
		}
		out = append(out, *req)
	}
	return out
}

// TransitionFromPending moves the request to next only if its observed
// status is exactly Pending. When two decisions race, the loser gets
// ErrInvalidTransition rather than overwriting the winner.
func (s *Store) TransitionFromPending(id, next, decidedBy string, at time.Time) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return Request{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if req.Status != StatusPending {
		return Request{}, fmt.Errorf("%w: request %s is %s", ErrInvalidTransition, id, req.Status)
	}
	req.Status = next
	req.DecidedBy = decidedBy
	decidedAt := at
	req.DecidedAt = &decidedAt
	return *req, nil
}
