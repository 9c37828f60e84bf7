package request

import (
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/planning"
)

type CreateRequestRequest struct {
	// EmployeeCode lets an admin file the request for someone else. Empty
	// means the actor requests for themselves.
	EmployeeCode string `json:"employee_code" binding:"omitempty,max=20"`

	Type      string   `json:"type" binding:"required,oneof=vacation other"`
	IsRange   bool     `json:"is_range"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Dates     []string `json:"dates"`
	Comment   string   `json:"comment" binding:"max=500"`
}

type RequestResponse struct {
	ID             string     `json:"id"`
	EmployeeCode   string     `json:"employee_code"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	IsRange        bool       `json:"is_range"`
	StartDate      string     `json:"start_date,omitempty"`
	EndDate        string     `json:"end_date,omitempty"`
	Dates          []string   `json:"dates,omitempty"`
	Comment        string     `json:"comment,omitempty"`
	ApprovedByCode string     `json:"approved_by_code,omitempty"`
	ApprovedByName string     `json:"approved_by_name,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateRequestResponse bundles the stored request with the advisory
// conflict warnings computed at submission time. Conflicts never block.
type CreateRequestResponse struct {
	Request   RequestResponse             `json:"request"`
	Conflicts []planning.ConflictResponse `json:"conflicts"`
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID.String(),
		EmployeeCode:   r.EmployeeCode,
		Type:           r.Type,
		Status:         r.Status,
		IsRange:        r.IsRange,
		Comment:        r.Comment,
		ApprovedByCode: r.ApprovedByCode,
		ApprovedByName: r.ApprovedByName,
		DecidedAt:      r.DecidedAt,
		CreatedAt:      r.CreatedAt,
	}
	if r.StartDate != nil {
		resp.StartDate = r.StartDate.Format("2006-01-02")
	}
	if r.EndDate != nil {
		resp.EndDate = r.EndDate.Format("2006-01-02")
	}
	for _, d := range r.Dates {
		resp.Dates = append(resp.Dates, d.Date.Format("2006-01-02"))
	}
	return resp
}

func mapToListResponse(requests []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, mapToResponse(r))
	}
	return out
}
