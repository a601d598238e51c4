package session

import (
	"errors"
	"fmt"
	"sync/atomic"
)

const (
	RoleAdmin    = "admin"
	RoleTeamLead = "team_lead"
	RoleEmployee = "employee"
)

var Roles = []string{RoleAdmin, RoleTeamLead, RoleEmployee}

var ErrUnknownRole = errors.New("unknown role")

// Session is the live authenticated-identity record for one user context.
// The zero value is the unauthenticated state.
type Session struct {
	Role          string `json:"role"`
	Name          string `json:"name"`
	Authenticated bool   `json:"authenticated"`
}

// Store holds the session snapshot for a single user context. Login and
// Logout each replace the snapshot in one atomic swap, so readers never
// observe a half-updated identity.
type Store struct {
	current atomic.Pointer[Session]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Session{})
	return s
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeamLead, RoleEmployee:
		return true
	}
	return false
}

// Login replaces the current snapshot with an authenticated session carrying
// exactly the supplied role and name. No credential check happens here;
// identity verification belongs to an external collaborator.
func (s *Store) Login(role, name string) (Session, error) {
	if !ValidRole(role) {
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	next := &Session{Role: role, Name: name, Authenticated: true}
	s.current.Store(next)
	return *next, nil
}

// Logout resets to the unauthenticated state. Safe to call repeatedly.
func (s *Store) Logout() {
	s.current.Store(&Session{})
}

// Current returns the snapshot by value; mutation goes through Login/Logout.
func (s *Store) Current() Session {
	return *s.current.Load()
}
