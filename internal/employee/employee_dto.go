package employee

type ScheduleDayInput struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CreateEmployeeRequest struct {
	Code          string             `json:"code" binding:"required"`
	FullName      string             `json:"full_name" binding:"required"`
	TotalDays     int                `json:"total_days" binding:"min=0"`
	CarryOverDays int                `json:"carry_over_days" binding:"min=0"`
	DepartmentIDs []string           `json:"department_ids"`
	Schedule      []ScheduleDayInput `json:"schedule"`
	Phone         *string            `json:"phone"`
	WhatsappOptIn bool               `json:"whatsapp_opt_in"`
	IsAdmin       bool               `json:"is_admin"`
}

type UpdateEmployeeRequest struct {
	FullName      string             `json:"full_name" binding:"required"`
	TotalDays     int                `json:"total_days" binding:"min=0"`
	CarryOverDays int                `json:"carry_over_days" binding:"min=0"`
	DepartmentIDs []string           `json:"department_ids"`
	Schedule      []ScheduleDayInput `json:"schedule"`
	Phone         *string            `json:"phone"`
	WhatsappOptIn bool               `json:"whatsapp_opt_in"`
	IsAdmin       bool               `json:"is_admin"`
}

type ScheduleDayResponse struct {
	Weekday   int    `json:"weekday"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type EmployeeResponse struct {
	ID            string                `json:"id"`
	Code          string                `json:"code"`
	FullName      string                `json:"full_name"`
	TotalDays     int                   `json:"total_days"`
	CarryOverDays int                   `json:"carry_over_days"`
	Departments   []string              `json:"departments"`
	Schedule      []ScheduleDayResponse `json:"schedule,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	WhatsappOptIn bool                  `json:"whatsapp_opt_in"`
	IsAdmin       bool                  `json:"is_admin"`
}
