package planning

import "time"

// The balance and conflict computations are pure functions over a Snapshot:
// the full employee/request/holiday state loaded in one pass, mirroring how
// the product recomputes everything from scratch on every store change.
// Dates inside a snapshot are ISO "2006-01-02" strings throughout.

type EmployeeInfo struct {
	Code          string
	FullName      string
	TotalDays     int
	CarryOverDays int
	Departments   []string
}

type RequestInfo struct {
	ID           string
	EmployeeCode string
	Type         string // "vacation" or "other"
	Status       string // "pending", "approved", "denied"
	IsRange      bool
	StartDate    string
	EndDate      string
	Dates        []string // explicit-list requests
}

type HolidayInfo struct {
	Date string
	Name string
	Kind string // "local", "closure", "turno"
}

type Snapshot struct {
	Employees []EmployeeInfo
	Requests  []RequestInfo
	Holidays  []HolidayInfo
}

func (s Snapshot) findEmployee(code string) (EmployeeInfo, bool) {
	for _, e := range s.Employees {
		if e.Code == code {
			return e, true
		}
	}
	return EmployeeInfo{}, false
}

// deductibleDates are local holidays and closure days: counted once globally,
// never against an individual request.
func (s Snapshot) deductibleDates() map[string]struct{} {
	set := make(map[string]struct{})
	for _, h := range s.Holidays {
		if h.Kind == "local" || h.Kind == "closure" {
			set[h.Date] = struct{}{}
		}
	}
	return set
}

func (s Snapshot) turnoDates() map[string]struct{} {
	set := make(map[string]struct{})
	for _, h := range s.Holidays {
		if h.Kind == "turno" {
			set[h.Date] = struct{}{}
		}
	}
	return set
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isWeekend(day string) bool {
	t, ok := parseDay(day)
	if !ok {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ExpandRange lists every day from start to end inclusive. Returns nil when
// either bound is malformed or end precedes start.
func ExpandRange(start, end string, includeWeekends bool) []string {
	from, ok := parseDay(start)
	if !ok {
		return nil
	}
	to, ok := parseDay(end)
	if !ok || to.Before(from) {
		return nil
	}

	var days []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		if !includeWeekends {
			if wd := cur.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
		}
		days = append(days, cur.Format("2006-01-02"))
	}
	return days
}

// RequestDates expands a request to its concrete calendar dates. Explicit
// lists are taken as given apart from the weekend filter; holidays are never
// filtered here (a holiday inside a taken range still counts as used).
func RequestDates(r RequestInfo, includeWeekends bool) []string {
	if r.IsRange {
		return ExpandRange(r.StartDate, r.EndDate, includeWeekends)
	}

	if includeWeekends {
		return r.Dates
	}
	var days []string
	for _, d := range r.Dates {
		if !isWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}
