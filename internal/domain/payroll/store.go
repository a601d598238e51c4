package payroll

import (
	"fmt"
	"sync"
)

// Store keeps compensation records and payslip history per employee in
// memory.
type Store struct {
	mu           sync.RWMutex
	compensation map[string]CompensationRecord
	history      map[string][]HistoryEntry
}

func NewStore() *Store {
	return &Store{
		compensation: map[string]CompensationRecord{},
		history:      map[string][]HistoryEntry{},
	}
}

func (s *Store) SetCompensation(employeeID string, comp CompensationRecord) error {
	if err := comp.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.compensation[employeeID] = comp
	s.mu.Unlock()
	return nil
}

func (s *Store) Compensation(employeeID string) (CompensationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comp, ok := s.compensation[employeeID]
	if !ok {
		return CompensationRecord{}, fmt.Errorf("no compensation record for employee %s", employeeID)
	}
	return comp, nil
}

func (s *Store) AppendHistory(employeeID string, entry HistoryEntry) {
	s.mu.Lock()
	s.history[employeeID] = append(s.history[employeeID], entry)
	s.mu.Unlock()
}

// History returns payslip history, newest first.
func (s *Store) History(employeeID string) []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.history[employeeID]
	out := make([]HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}
