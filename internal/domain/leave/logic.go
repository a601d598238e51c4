package leave

import (
	"errors"
	"math"
	"time"
)

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// ValidDayCount accepts positive day counts in half-day increments.
func ValidDayCount(days float64) bool {
	if days <= 0 {
		return false
	}
	doubled := days * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

func ValidType(leaveType string) bool {
	for _, t := range Types {
		if t == leaveType {
			return true
		}
	}
	return false
}
