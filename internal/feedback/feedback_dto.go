package feedback

import "time"

type CreateItemRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type ItemResponse struct {
	ID              string    `json:"id"`
	EmployeeCode    string    `json:"employee_code"`
	EmployeeName    string    `json:"employee_name"`
	Text            string    `json:"text"`
	Completed       bool      `json:"completed"`
	CompletedByCode string    `json:"completed_by_code,omitempty"`
	CompletedByName string    `json:"completed_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func mapToResponse(item Item) ItemResponse {
	resp := ItemResponse{
		ID:           item.ID.String(),
		EmployeeCode: item.EmployeeCode,
		EmployeeName: item.EmployeeName,
		Text:         item.Text,
		Completed:    item.Completed,
		CreatedAt:    item.CreatedAt,
	}
	if item.CompletedByCode != nil {
		resp.CompletedByCode = *item.CompletedByCode
	}
	if item.CompletedByName != nil {
		resp.CompletedByName = *item.CompletedByName
	}
	return resp
}

func mapToListResponse(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapToResponse(item))
	}
	return out
}
