package payroll

import (
	"errors"
	"fmt"
	"math"

	"ems/internal/domain/attendance"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrZeroWorkingDays = errors.New("working days must be positive")
)

// Compute derives the pay breakdown from a compensation record and an
// attendance summary. Values stay unrounded; callers round at the
// presentation boundary via Rounded so repeated derivations do not
// compound rounding error.
func Compute(comp CompensationRecord, att attendance.Summary) (Breakdown, error) {
	if err := comp.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := att.Validate(); err != nil {
		return Breakdown{}, err
	}
	if att.WorkingDays == 0 {
		return Breakdown{}, ErrZeroWorkingDays
	}

	gross := comp.Basic + comp.HRA + comp.TransportAllowance + comp.SpecialAllowance + comp.Bonus
	deductions := comp.ProvidentFund + comp.Tax + comp.Insurance
	dailyRate := comp.Basic / float64(att.WorkingDays)

	return Breakdown{
		Gross:            gross,
		TotalDeductions:  deductions,
		Net:              gross - deductions,
		DailyRate:        dailyRate,
		AttendanceImpact: dailyRate * float64(att.AbsentDays()),
	}, nil
}

func (c CompensationRecord) Validate() error {
	amounts := map[string]float64{
		"basic":              c.Basic,
		"hra":                c.HRA,
		"transportAllowance": c.TransportAllowance,
		"specialAllowance":   c.SpecialAllowance,
		"bonus":              c.Bonus,
		"providentFund":      c.ProvidentFund,
		"tax":                c.Tax,
		"insurance":          c.Insurance,
	}
	for name, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("%w: %s must be non-negative", ErrValidation, name)
		}
	}
	return nil
}

// Rounded returns a copy with every monetary figure rounded to two
// decimals, half away from zero.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Gross:            Round2(b.Gross),
		TotalDeductions:  Round2(b.TotalDeductions),
		Net:              Round2(b.Net),
		DailyRate:        Round2(b.DailyRate),
		AttendanceImpact: Round2(b.AttendanceImpact),
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
