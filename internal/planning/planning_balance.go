package planning

// BalanceResult is the full per-employee bucket breakdown for one year.
type BalanceResult struct {
	EmployeeCode   string
	FullName       string
	Total          int
	CarryOver      int
	UsedOwn        int
	UsedClosure    int
	UsedTurno      int
	UsedOther      int
	PendingWaiting int
	Used           int
	Available      int
}

// BusinessDays counts Monday-to-Friday days between start and end inclusive
// that are not in the excluded set. Malformed or inverted bounds yield 0.
func BusinessDays(start, end string, excluded map[string]struct{}) int {
	n := 0
	for _, day := range ExpandRange(start, end, false) {
		if _, skip := excluded[day]; skip {
			continue
		}
		n++
	}
	return n
}

// Calculate derives the vacation balance of one employee for one year.
//
// Weekends never consume balance: they are dropped when requests expand.
// Company closures and local holidays are charged once via UsedClosure, so a
// request day that lands on one is skipped rather than double-counted. Days
// on a turno holiday reclassify to UsedTurno. Approved type "other" days are
// tallied for display but never subtracted.
func Calculate(snap Snapshot, code string, year int) BalanceResult {
	emp, found := snap.findEmployee(code)
	if !found {
		return BalanceResult{EmployeeCode: code}
	}

	res := BalanceResult{
		EmployeeCode: emp.Code,
		FullName:     emp.FullName,
		Total:        emp.TotalDays,
		CarryOver:    emp.CarryOverDays,
	}

	deductible := snap.deductibleDates()
	turno := snap.turnoDates()

	for _, h := range snap.Holidays {
		if h.Kind != "local" && h.Kind != "closure" {
			continue
		}
		if t, ok := parseDay(h.Date); ok && t.Year() == year && !isWeekend(h.Date) {
			res.UsedClosure++
		}
	}

	for _, r := range snap.Requests {
		if r.EmployeeCode != code {
			continue
		}
		switch {
		case r.Status == "approved" && r.Type == "vacation":
			for _, day := range RequestDates(r, false) {
				if _, skip := deductible[day]; skip {
					continue
				}
				if _, isTurno := turno[day]; isTurno {
					res.UsedTurno++
				} else {
					res.UsedOwn++
				}
			}
		case r.Status == "approved" && r.Type == "other":
			res.UsedOther += len(RequestDates(r, false))
		case r.Status == "pending" && r.Type == "vacation":
			for _, day := range RequestDates(r, false) {
				if _, skip := deductible[day]; !skip {
					res.PendingWaiting++
				}
			}
		}
	}

	res.Used = res.UsedOwn + res.UsedClosure + res.UsedTurno
	res.Available = res.Total + res.CarryOver - res.Used - res.PendingWaiting
	return res
}
