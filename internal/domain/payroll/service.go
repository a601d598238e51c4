package payroll

import (
	"fmt"

	"ems/internal/domain/attendance"
)

type Service struct {
	Store      *Store
	Attendance *attendance.Store
}

func NewService(store *Store, attendanceStore *attendance.Store) *Service {
	return &Service{Store: store, Attendance: attendanceStore}
}

// Breakdown computes the presentation-rounded pay figures for the
// employee's latest attendance period.
func (s *Service) Breakdown(employeeID string) (Breakdown, error) {
	comp, err := s.Store.Compensation(employeeID)
	if err != nil {
		return Breakdown{}, err
	}
	latest, ok := s.Attendance.Latest(employeeID)
	if !ok {
		return Breakdown{}, fmt.Errorf("no attendance summary for employee %s", employeeID)
	}
	breakdown, err := Compute(comp, latest.Summary)
	if err != nil {
		return Breakdown{}, err
	}
	return breakdown.Rounded(), nil
}

func (s *Service) History(employeeID string) []HistoryEntry {
	return s.Store.History(employeeID)
}

// Payslip assembles the data needed to render the employee's payslip for
// the latest attendance period.
func (s *Service) Payslip(employeeID, employeeName string) (Payslip, error) {
	comp, err := s.Store.Compensation(employeeID)
	if err != nil {
		return Payslip{}, err
	}
	latest, ok := s.Attendance.Latest(employeeID)
	if !ok {
		return Payslip{}, fmt.Errorf("no attendance summary for employee %s", employeeID)
	}
	return Payslip{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Month:        latest.Month,
		Compensation: comp,
		Attendance:   latest.Summary,
	}, nil
}
