package timeclock

import "time"

// Location is the optional GPS fix sent with clock in/out.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PunchRequest struct {
	Location *Location `json:"location"`
}

type ToggleBreakRequest struct {
	Kind     string    `json:"kind" binding:"required,oneof=breakfast lunch"`
	Location *Location `json:"location"`
}

type BreakResponse struct {
	Kind    string     `json:"kind"`
	StartAt time.Time  `json:"start_at"`
	EndAt   *time.Time `json:"end_at,omitempty"`
}

type RecordResponse struct {
	ID           string     `json:"id"`
	EmployeeCode string     `json:"employee_code"`
	Day          string     `json:"day"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`

	StartDistanceM *float64 `json:"start_distance_m,omitempty"`
	StartInRange   *bool    `json:"start_in_range,omitempty"`
	StartDeviates  bool     `json:"start_deviates"`
	EndDistanceM   *float64 `json:"end_distance_m,omitempty"`
	EndInRange     *bool    `json:"end_in_range,omitempty"`
	EndDeviates    bool     `json:"end_deviates"`

	Reopened bool            `json:"reopened"`
	Breaks   []BreakResponse `json:"breaks"`

	// WorkedMinutes is clock-out minus clock-in. Break time is reported
	// above but not subtracted (product rule). Nil while the day is open.
	WorkedMinutes *int `json:"worked_minutes,omitempty"`
}

type SettingsResponse struct {
	OfficeLat       float64 `json:"office_lat"`
	OfficeLng       float64 `json:"office_lng"`
	RadiusMeters    float64 `json:"radius_meters"`
	RequireLocation bool    `json:"require_location"`
}

type UpdateSettingsRequest struct {
	OfficeLat       float64 `json:"office_lat" binding:"required,gte=-90,lte=90"`
	OfficeLng       float64 `json:"office_lng" binding:"required,gte=-180,lte=180"`
	RadiusMeters    float64 `json:"radius_meters" binding:"gte=0"`
	RequireLocation bool    `json:"require_location"`
}

func mapToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:             rec.ID.String(),
		EmployeeCode:   rec.EmployeeCode,
		Day:            rec.Day.Format("2006-01-02"),
		StartAt:        rec.StartAt,
		EndAt:          rec.EndAt,
		StartDistanceM: rec.StartDistanceM,
		StartInRange:   rec.StartInRange,
		StartDeviates:  rec.StartDeviates,
		EndDistanceM:   rec.EndDistanceM,
		EndInRange:     rec.EndInRange,
		EndDeviates:    rec.EndDeviates,
		Reopened:       rec.Reopened,
		Breaks:         []BreakResponse{},
	}
	for _, b := range rec.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Kind:    b.Kind,
			StartAt: b.StartAt,
			EndAt:   b.EndAt,
		})
	}
	if rec.StartAt != nil && rec.EndAt != nil {
		worked := int(rec.EndAt.Sub(*rec.StartAt).Minutes())
		resp.WorkedMinutes = &worked
	}
	return resp
}

func mapToListResponse(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, mapToResponse(rec))
	}
	return out
}

func mapSettings(s Settings) SettingsResponse {
	return SettingsResponse{
		OfficeLat:       s.OfficeLat,
		OfficeLng:       s.OfficeLng,
		RadiusMeters:    s.RadiusMeters,
		RequireLocation: s.RequireLocation,
	}
}
