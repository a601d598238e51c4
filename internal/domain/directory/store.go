package directory

import "sync"

// Employee is a directory record for the employees view.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

type Store struct {
	mu        sync.RWMutex
	employees map[string]Employee
	order     []string
	byName    map[string]string
}

func NewStore() *Store {
	return &Store{
		employees: map[string]Employee{},
		byName:    map[string]string{},
	}
}

func (s *Store) Upsert(emp Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[emp.ID]; !ok {
		s.order = append(s.order, emp.ID)
	}
	s.employees[emp.ID] = emp
	s.byName[emp.Name] = emp.ID
}

func (s *Store) Get(id string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emp, ok := s.employees[id]
	return emp, ok
}

// FindByName resolves a display name to a directory record. The portal's
// session carries only role and name, so name is the join key.
func (s *Store) FindByName(name string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[name]
	if !ok {
		return Employee{}, false
	}
	return s.employees[id], true
}

func (s *Store) List() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.employees[id])
	}
	return out
}
