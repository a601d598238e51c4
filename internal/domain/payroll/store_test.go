package payroll

import (
	"testing"

	"ems/internal/domain/attendance"
)

func TestServiceBreakdownUsesLatestAttendance(t *testing.T) {
	store := NewStore()
	attStore := attendance.NewStore()
	svc := NewService(store, attStore)

	if err := store.SetCompensation("EMP-12345", demoComp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := attStore.Record(attendance.MonthlySummary{
		EmployeeID: "EMP-12345",
		Month:      "December 2025",
		Summary:    attendance.Summary{WorkingDays: 20, PresentDays: 20},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := attStore.Record(attendance.MonthlySummary{
		EmployeeID: "EMP-12345",
		Month:      "January 2026",
		Summary:    attendance.Summary{WorkingDays: 22, PresentDays: 21, LeaveDays: 1},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown, err := svc.Breakdown("EMP-12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.DailyRate != 136.36 {
		t.Fatalf("expected daily rate from January summary, got %v", breakdown.DailyRate)
	}
}

func TestServiceBreakdownMissingData(t *testing.T) {
	svc := NewService(NewStore(), attendance.NewStore())
	if _, err := svc.Breakdown("EMP-404"); err == nil {
		t.Fatal("expected error for missing compensation record")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := NewStore()
	store.AppendHistory("EMP-12345", HistoryEntry{Month: "December 2025", Net: 4290})
	store.AppendHistory("EMP-12345", HistoryEntry{Month: "January 2026", Net: 4290})

	history := store.History("EMP-12345")
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Month != "January 2026" {
		t.Fatalf("expected newest first, got %q", history[0].Month)
	}
}

func TestSetCompensationValidates(t *testing.T) {
	store := NewStore()
	comp := demoComp
	comp.Basic = -100
	if err := store.SetCompensation("EMP-12345", comp); err == nil {
		t.Fatal("expected validation error for negative basic")
	}
}
