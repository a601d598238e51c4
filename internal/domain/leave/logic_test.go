package leave

import (
	"testing"
	"time"
)

func TestCalculateDays(t *testing.T) {
	start := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	end = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	days, err = CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 2 {
		t.Fatalf("expected 2 days, got %v", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	start := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	_, err := CalculateDays(start, end)
	if err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestValidDayCount(t *testing.T) {
	for _, days := range []float64{0.5, 1, 1.5, 2, 5, 26} {
		if !ValidDayCount(days) {
			t.Fatalf("expected %v to be a valid day count", days)
		}
	}
	for _, days := range []float64{0, -1, 0.3, 1.25, 0.7} {
		if ValidDayCount(days) {
			t.Fatalf("expected %v to be rejected", days)
		}
	}
}

func TestValidType(t *testing.T) {
	for _, leaveType := range Types {
		if !ValidType(leaveType) {
			t.Fatalf("expected %q to be valid", leaveType)
		}
	}
	if ValidType("Sabbatical") {
		t.Fatal("expected unknown type to be rejected")
	}
}
