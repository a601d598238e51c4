package payroll

import (
	"bytes"
	"testing"

	"ems/internal/domain/attendance"
)

func TestRenderPDF(t *testing.T) {
	slip := Payslip{
		EmployeeID:   "EMP-12345",
		EmployeeName: "John Doe",
		Month:        "January 2026",
		Compensation: demoComp,
		Attendance:   attendance.Summary{WorkingDays: 22, PresentDays: 21, LeaveDays: 1},
	}

	var buf bytes.Buffer
	if err := RenderPDF(&buf, slip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}

func TestRenderPDFPropagatesComputeError(t *testing.T) {
	slip := Payslip{
		EmployeeID:   "EMP-12345",
		EmployeeName: "John Doe",
		Month:        "January 2026",
		Compensation: demoComp,
		Attendance:   attendance.Summary{},
	}

	var buf bytes.Buffer
	if err := RenderPDF(&buf, slip); err == nil {
		t.Fatal("expected error for zero working days")
	}
}
