package attendance

import (
	"fmt"
	"sync"
)

type Store struct {
	mu         sync.RWMutex
	byEmployee map[string][]MonthlySummary
}

func NewStore() *Store {
	return &Store{byEmployee: map[string][]MonthlySummary{}}
}

// Record appends a monthly summary after validation. Newest entries go
// last; Latest reads from the tail.
func (s *Store) Record(entry MonthlySummary) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.EmployeeID == "" || entry.Month == "" {
		return fmt.Errorf("%w: employee and month are required", ErrValidation)
	}
	s.mu.Lock()
	s.byEmployee[entry.EmployeeID] = append(s.byEmployee[entry.EmployeeID], entry)
	s.mu.Unlock()
	return nil
}

func (s *Store) List(employeeID string) []MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.byEmployee[employeeID]
	out := make([]MonthlySummary, len(entries))
	copy(out, entries)
	return out
}

func (s *Store) Latest(employeeID string) (MonthlySummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.byEmployee[employeeID]
	if len(entries) == 0 {
		return MonthlySummary{}, false
	}
	return entries[len(entries)-1], true
}
