package planning

// Conflict reports an overlap between candidate dates and one request of a
// co-worker who shares at least one department with the asking employee.
type Conflict struct {
	EmployeeCode      string
	EmployeeName      string
	Status            string
	Dates             []string
	SharedDepartments []string
}

func sharedDepartments(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, d := range a {
		set[d] = struct{}{}
	}
	var shared []string
	for _, d := range b {
		if _, ok := set[d]; ok {
			shared = append(shared, d)
		}
	}
	return shared
}

// FindConflicts lists active requests of department-mates that touch any of
// the candidate dates. An employee with no departments conflicts with nobody.
// Co-worker ranges expand weekend-inclusive here: a Saturday inside their
// approved range still blocks the slot even though it costs them nothing.
func FindConflicts(snap Snapshot, candidateDates []string, code string) []Conflict {
	emp, found := snap.findEmployee(code)
	if !found || len(emp.Departments) == 0 {
		return nil
	}

	candidate := make(map[string]struct{}, len(candidateDates))
	for _, d := range candidateDates {
		candidate[d] = struct{}{}
	}

	var conflicts []Conflict
	for _, other := range snap.Employees {
		if other.Code == code {
			continue
		}
		shared := sharedDepartments(emp.Departments, other.Departments)
		if len(shared) == 0 {
			continue
		}
		for _, r := range snap.Requests {
			if r.EmployeeCode != other.Code {
				continue
			}
			if r.Status != "approved" && r.Status != "pending" {
				continue
			}
			var overlap []string
			for _, day := range RequestDates(r, true) {
				if _, hit := candidate[day]; hit {
					overlap = append(overlap, day)
				}
			}
			if len(overlap) == 0 {
				continue
			}
			conflicts = append(conflicts, Conflict{
				EmployeeCode:      other.Code,
				EmployeeName:      other.FullName,
				Status:            r.Status,
				Dates:             overlap,
				SharedDepartments: shared,
			})
		}
	}
	return conflicts
}
