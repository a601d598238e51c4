package payroll

// CompensationRecord holds the monthly earning and deduction components in
// a single currency unit.
type CompensationRecord struct {
	Basic              float64 `json:"basic"`
	HRA                float64 `json:"hra"`
	TransportAllowance float64 `json:"transportAllowance"`
	SpecialAllowance   float64 `json:"specialAllowance"`
	Bonus              float64 `json:"bonus"`
	ProvidentFund      float64 `json:"providentFund"`
	Tax                float64 `json:"tax"`
	Insurance          float64 `json:"insurance"`
}

// Breakdown is the derived pay figure set. AttendanceImpact is reported
// alongside net; it is not folded into the deductions.
type Breakdown struct {
	Gross            float64 `json:"gross"`
	TotalDeductions  float64 `json:"totalDeductions"`
	Net              float64 `json:"net"`
	DailyRate        float64 `json:"dailyRate"`
	AttendanceImpact float64 `json:"attendanceImpact"`
}

type HistoryEntry struct {
	Month      string  `json:"month"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
	Status     string  `json:"status"`
}
