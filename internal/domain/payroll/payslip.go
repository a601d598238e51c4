package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"ems/internal/domain/attendance"
)

type Payslip struct {
	EmployeeID   string
	EmployeeName string
	Month        string
	Compensation CompensationRecord
	Attendance   attendance.Summary
}

// RenderPDF writes the payslip as a PDF document.
func RenderPDF(w io.Writer, slip Payslip) error {
	breakdown, err := Compute(slip.Compensation, slip.Attendance)
	if err != nil {
		return err
	}
	rounded := breakdown.Rounded()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Payslip for %s", slip.Month))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", slip.EmployeeName, slip.EmployeeID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	earningRow(pdf, "Basic Salary", slip.Compensation.Basic)
	earningRow(pdf, "House Rent Allowance (HRA)", slip.Compensation.HRA)
	earningRow(pdf, "Transport Allowance", slip.Compensation.TransportAllowance)
	earningRow(pdf, "Special Allowance", slip.Compensation.SpecialAllowance)
	earningRow(pdf, "Performance Bonus", slip.Compensation.Bonus)
	pdf.SetFont("Helvetica", "B", 12)
	earningRow(pdf, "Total Earnings", rounded.Gross)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	earningRow(pdf, "Provident Fund (PF)", slip.Compensation.ProvidentFund)
	earningRow(pdf, "Income Tax (TDS)", slip.Compensation.Tax)
	earningRow(pdf, "Health Insurance", slip.Compensation.Insurance)
	pdf.SetFont("Helvetica", "B", 12)
	earningRow(pdf, "Total Deductions", rounded.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Working Days: %d | Present: %d | Leave: %d",
		slip.Attendance.WorkingDays, slip.Attendance.PresentDays, slip.Attendance.LeaveDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Daily Rate: %.2f | Attendance Impact: %.2f",
		rounded.DailyRate, rounded.AttendanceImpact))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Net Salary (Take Home): %.2f", rounded.Net))

	return pdf.Output(w)
}

func earningRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
