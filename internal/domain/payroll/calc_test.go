package payroll

import (
	"errors"
	"testing"

	"ems/internal/domain/attendance"
)

var demoComp = CompensationRecord{
	Basic:              3000,
	HRA:                1200,
	TransportAllowance: 300,
	SpecialAllowance:   500,
	Bonus:              200,
	ProvidentFund:      360,
	Tax:                450,
	Insurance:          100,
}

func TestComputeGrossDeductionsNet(t *testing.T) {
	att := attendance.Summary{WorkingDays: 22, PresentDays: 22}
	breakdown, err := Compute(demoComp, att)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.Gross != 5200 {
		t.Fatalf("expected gross 5200, got %v", breakdown.Gross)
	}
	if breakdown.TotalDeductions != 910 {
		t.Fatalf("expected deductions 910, got %v", breakdown.TotalDeductions)
	}
	if breakdown.Net != 4290 {
		t.Fatalf("expected net 4290, got %v", breakdown.Net)
	}
}

func TestComputeAttendanceImpact(t *testing.T) {
	att := attendance.Summary{WorkingDays: 22, PresentDays: 21, LeaveDays: 1}
	breakdown, err := Compute(demoComp, att)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rounded := breakdown.Rounded()
	if rounded.DailyRate != 136.36 {
		t.Fatalf("expected daily rate 136.36, got %v", rounded.DailyRate)
	}
	if rounded.AttendanceImpact != 136.36 {
		t.Fatalf("expected attendance impact 136.36, got %v", rounded.AttendanceImpact)
	}

	// The impact is reported alongside net, never folded into it.
	if rounded.Net != 4290 {
		t.Fatalf("expected net unaffected by attendance impact, got %v", rounded.Net)
	}
}

func TestComputeZeroWorkingDays(t *testing.T) {
	_, err := Compute(demoComp, attendance.Summary{})
	if !errors.Is(err, ErrZeroWorkingDays) {
		t.Fatalf("expected zero working days error, got %v", err)
	}
}

func TestComputeRejectsNegativeAmounts(t *testing.T) {
	comp := demoComp
	comp.Tax = -1
	_, err := Compute(comp, attendance.Summary{WorkingDays: 22, PresentDays: 22})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComputeRejectsImpossibleAttendance(t *testing.T) {
	_, err := Compute(demoComp, attendance.Summary{WorkingDays: 20, PresentDays: 19, LeaveDays: 2})
	if !errors.Is(err, attendance.ErrValidation) {
		t.Fatalf("expected attendance validation error, got %v", err)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{136.3636, 136.36},
		{0.125, 0.13},
		{-0.125, -0.13},
		{0, 0},
		{1.994999, 1.99},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
