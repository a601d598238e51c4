package leave

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ems/internal/domain/session"
)

// Entitlements are the portal's per-type annual allowances shown on the
// leave balance cards.
var Entitlements = map[string]float64{
	TypeSick:      8,
	TypeCasual:    5,
	TypeAnnual:    12,
	TypeMaternity: 26,
	TypePaternity: 15,
}

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type SubmitInput struct {
	RequesterID string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
	Days        float64
	Reason      string
}

// Submit creates a new request in Pending. Days defaults to the inclusive
// date span; a non-zero value overrides it for half-day requests and must
// stay on the half-day grid.
func (s *Service) Submit(input SubmitInput) (Request, error) {
	if !ValidType(input.Type) {
		return Request{}, fmt.Errorf("%w: unknown leave type %q", ErrValidation, input.Type)
	}
	span, err := CalculateDays(input.StartDate, input.EndDate)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	days := input.Days
	if days == 0 {
		days = span
	}
	if !ValidDayCount(days) {
		return Request{}, fmt.Errorf("%w: days must be a positive multiple of 0.5, got %v", ErrValidation, days)
	}

	req := Request{
		ID:          uuid.NewString(),
		RequesterID: input.RequesterID,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Days:        days,
		Reason:      input.Reason,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.Store.Insert(req)
	return req, nil
}

func canDecide(role string) bool {
	return role == session.RoleAdmin || role == session.RoleTeamLead
}

func (s *Service) Approve(id, actingRole string) (Request, error) {
	if !canDecide(actingRole) {
		return Request{}, fmt.Errorf("%w: role %q cannot approve leave", ErrForbidden, actingRole)
	}
	return s.Store.TransitionFromPending(id, StatusApproved, actingRole, time.Now().UTC())
}

func (s *Service) Reject(id, actingRole string) (Request, error) {
	if !canDecide(actingRole) {
		return Request{}, fmt.Errorf("%w: role %q cannot reject leave", ErrForbidden, actingRole)
	}
	return s.Store.TransitionFromPending(id, StatusRejected, actingRole, time.Now().UTC())
}

func (s *Service) Get(id string) (Request, error) {
	req, ok := s.Store.Get(id)
	if !ok {
		return Request{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return req, nil
}

func (s *Service) List(requesterID string) []Request {
	return s.Store.List(requesterID)
}

// Balances derives used days per type from approved requests.
func (s *Service) Balances(requesterID string) []Balance {
	used := map[string]float64{}
	for _, req := range s.Store.List(requesterID) {
		if req.Status == StatusApproved {
			used[req.Type] += req.Days
		}
	}
	out := make([]Balance, 0, len(Types))
	for _, t := range Types {
		out = append(out, Balance{Type: t, Entitlement: Entitlements[t], Used: used[t]})
	}
	return out
}

// Calendar returns pending and approved requests for the calendar view.
func (s *Service) Calendar() []CalendarEntry {
	var out []CalendarEntry
	for _, req := range s.Store.List("") {
		if req.Status == StatusRejected {
			continue
		}
		out = append(out, CalendarEntry{
			ID:          req.ID,
			RequesterID: req.RequesterID,
			Type:        req.Type,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Status:      req.Status,
		})
	}
	return out
}
