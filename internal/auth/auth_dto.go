package auth

type LoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type AuthResponse struct {
	Code          string   `json:"code"`
	FullName      string   `json:"full_name"`
	Departments   []string `json:"departments"`
	TotalDays     int      `json:"total_days"`
	CarryOverDays int      `json:"carry_over_days"`
	IsAdmin       bool     `json:"is_admin"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	Profile     AuthResponse `json:"profile"`
}
