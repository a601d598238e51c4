package demo

import (
	"ems/internal/domain/attendance"
	"ems/internal/domain/directory"
	"ems/internal/domain/payroll"
)

// Seed loads the demo dataset the portal ships with. Fatal on seed data
// that fails validation would hide a programming error, so errors bubble
// up to the caller.
func Seed(dir *directory.Store, pay *payroll.Store, att *attendance.Store) error {
	employees := []directory.Employee{
		{ID: "EMP-12345", Name: "John Doe", Email: "john.doe@example.com", Department: "Engineering", Title: "Software Engineer"},
		{ID: "EMP-12346", Name: "Jane Smith", Email: "jane.smith@example.com", Department: "Engineering", Title: "QA Engineer"},
		{ID: "EMP-12347", Name: "Bob Johnson", Email: "bob.johnson@example.com", Department: "Operations", Title: "Support Specialist"},
		{ID: "EMP-10001", Name: "Team Lead User", Email: "team.lead@example.com", Department: "Engineering", Title: "Team Lead"},
		{ID: "EMP-10000", Name: "Admin User", Email: "admin@example.com", Department: "Management", Title: "Administrator"},
	}
	for _, emp := range employees {
		dir.Upsert(emp)
	}

	comp := payroll.CompensationRecord{
		Basic:              3000,
		HRA:                1200,
		TransportAllowance: 300,
		SpecialAllowance:   500,
		Bonus:              200,
		ProvidentFund:      360,
		Tax:                450,
		Insurance:          100,
	}
	for _, emp := range employees {
		if err := pay.SetCompensation(emp.ID, comp); err != nil {
			return err
		}
	}

	history := []payroll.HistoryEntry{
		{Month: "October 2025", Gross: 5000, Deductions: 850, Net: 4150, Status: "Paid"},
		{Month: "November 2025", Gross: 5200, Deductions: 910, Net: 4290, Status: "Paid"},
		{Month: "December 2025", Gross: 5200, Deductions: 910, Net: 4290, Status: "Paid"},
		{Month: "January 2026", Gross: 5200, Deductions: 910, Net: 4290, Status: "Paid"},
	}
	for _, emp := range employees {
		for _, entry := range history {
			pay.AppendHistory(emp.ID, entry)
		}
	}

	for _, emp := range employees {
		if err := att.Record(attendance.MonthlySummary{
			EmployeeID: emp.ID,
			Month:      "January 2026",
			Summary:    attendance.Summary{WorkingDays: 22, PresentDays: 21, LeaveDays: 1},
		}); err != nil {
			return err
		}
	}
	return nil
}
