package events

import "time"

const RequestLifecycleTopic = "vacation.request.lifecycle.v1"

const (
	EventRequestCreated = "request.created"
	EventRequestDecided = "request.decided"
)

// ConflictSummary is the per-coworker overlap digest attached to created
// events so the admin notification can warn before approving.
type ConflictSummary struct {
	EmployeeCode      string   `json:"employee_code"`
	EmployeeName      string   `json:"employee_name"`
	Status            string   `json:"status"`
	Days              int      `json:"days"`
	SharedDepartments []string `json:"shared_departments"`
}

type RequestCreatedEvent struct {
	EventType    string            `json:"event_type"`
	RequestID    string            `json:"request_id"`
	EmployeeCode string            `json:"employee_code"`
	EmployeeName string            `json:"employee_name"`
	Type         string            `json:"type"`
	IsRange      bool              `json:"is_range"`
	StartDate    string            `json:"start_date,omitempty"`
	EndDate      string            `json:"end_date,omitempty"`
	Dates        []string          `json:"dates,omitempty"`
	Comment      string            `json:"comment,omitempty"`
	Conflicts    []ConflictSummary `json:"conflicts,omitempty"`
	OccurredAt   time.Time         `json:"occurred_at"`
}

type RequestDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	EmployeeCode   string    `json:"employee_code"`
	Status         string    `json:"status"`
	ApprovedByCode string    `json:"approved_by_code"`
	ApprovedByName string    `json:"approved_by_name"`
	IsRange        bool      `json:"is_range"`
	StartDate      string    `json:"start_date,omitempty"`
	EndDate        string    `json:"end_date,omitempty"`
	Dates          []string  `json:"dates,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
