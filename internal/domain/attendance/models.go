package attendance

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

// Summary is a per-period attendance roll-up. Present and leave days can
// never exceed the working days in the period.
type Summary struct {
	WorkingDays int `json:"workingDays"`
	PresentDays int `json:"presentDays"`
	LeaveDays   int `json:"leaveDays"`
}

func (s Summary) Validate() error {
	if s.WorkingDays < 0 || s.PresentDays < 0 || s.LeaveDays < 0 {
		return fmt.Errorf("%w: day counts must be non-negative", ErrValidation)
	}
	if s.PresentDays+s.LeaveDays > s.WorkingDays {
		return fmt.Errorf("%w: present (%d) plus leave (%d) days exceed working days (%d)",
			ErrValidation, s.PresentDays, s.LeaveDays, s.WorkingDays)
	}
	return nil
}

func (s Summary) AbsentDays() int {
	return s.WorkingDays - s.PresentDays
}

type MonthlySummary struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
	Summary
}
