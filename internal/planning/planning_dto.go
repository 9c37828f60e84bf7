package planning

type BalanceResponse struct {
	EmployeeCode   string `json:"employee_code"`
	FullName       string `json:"full_name"`
	Year           int    `json:"year"`
	Total          int    `json:"total"`
	CarryOver      int    `json:"carry_over"`
	UsedOwn        int    `json:"used_own"`
	UsedClosure    int    `json:"used_closure"`
	UsedTurno      int    `json:"used_turno"`
	UsedOther      int    `json:"used_other"`
	PendingWaiting int    `json:"pending_waiting"`
	Used           int    `json:"used"`
	Available      int    `json:"available"`
}

type ConflictPreviewRequest struct {
	EmployeeCode string   `json:"employee_code"`
	IsRange      bool     `json:"is_range"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Dates        []string `json:"dates"`
}

type ConflictResponse struct {
	EmployeeCode      string   `json:"employee_code"`
	EmployeeName      string   `json:"employee_name"`
	Status            string   `json:"status"`
	Dates             []string `json:"dates"`
	SharedDepartments []string `json:"shared_departments"`
}

func mapBalance(res BalanceResult, year int) BalanceResponse {
	return BalanceResponse{
		EmployeeCode:   res.EmployeeCode,
		FullName:       res.FullName,
		Year:           year,
		Total:          res.Total,
		CarryOver:      res.CarryOver,
		UsedOwn:        res.UsedOwn,
		UsedClosure:    res.UsedClosure,
		UsedTurno:      res.UsedTurno,
		UsedOther:      res.UsedOther,
		PendingWaiting: res.PendingWaiting,
		Used:           res.Used,
		Available:      res.Available,
	}
}

func mapConflicts(conflicts []Conflict) []ConflictResponse {
	out := make([]ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, ConflictResponse{
			EmployeeCode:      c.EmployeeCode,
			EmployeeName:      c.EmployeeName,
			Status:            c.Status,
			Dates:             c.Dates,
			SharedDepartments: c.SharedDepartments,
		})
	}
	return out
}
