package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	TypeSick      = "Sick Leave"
	TypeCasual    = "Casual Leave"
	TypeAnnual    = "Annual Leave"
	TypeMaternity = "Maternity Leave"
	TypePaternity = "Paternity Leave"
)

var Types = []string{TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity}

type Request struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requesterId"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Days        float64    `json:"days"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	DecidedBy   string     `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Terminal reports whether the request can no longer change status.
func (r Request) Terminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

type Balance struct {
	Type        string  `json:"type"`
	Entitlement float64 `json:"entitlement"`
	Used        float64 `json:"used"`
}

type CalendarEntry struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requesterId"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
}
