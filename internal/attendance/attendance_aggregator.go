package attendance

import (
	"slices"
	"strings"
	"time"

	"go-hris-web/internal/employee"
)

// Every function here is pure: inputs are never modified.

func RecordsForEmployee(records []Record, employeeID string) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

func CountByStatus(records []Record, employeeID string, status Status) int {
	n := 0
	for _, r := range records {
		if r.EmployeeID == employeeID && r.Status == status {
			n++
		}
	}
	return n
}

// SortByDateDescending puts the most recent day first. Records of the same day
// keep their input order.
func SortByDateDescending(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// FilterBySelected returns every record when nothing is selected.
func FilterBySelected(records []Record, selected string) []Record {
	if selected == "" {
		return slices.Clone(records)
	}
	return RecordsForEmployee(records, selected)
}

// ToggleSelection: clicking the selected employee again clears the filter.
func ToggleSelection(current, clicked string) string {
	if current == clicked {
		return ""
	}
	return clicked
}

// Summarize counts Present and Absent days per employee, in employee order.
func Summarize(employees []employee.Employee, records []Record) []Summary {
	out := make([]Summary, 0, len(employees))
	for _, e := range employees {
		out = append(out, Summary{
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Present:    CountByStatus(records, e.EmployeeID, StatusPresent),
			Absent:     CountByStatus(records, e.EmployeeID, StatusAbsent),
		})
	}
	return out
}

// JoinNames attaches the employee's display name to each record. Records of
// employees no longer in the list show the raw id and are marked Unresolved.
func JoinNames(records []Record, employees []employee.Employee) []Record {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeID] = e.FullName
	}

	out := make([]Record, len(records))
	for i, r := range records {
		name, ok := names[r.EmployeeID]
		r.Unresolved = !ok
		if !ok {
			name = r.EmployeeID
		}
		r.EmployeeName = name
		out[i] = r
	}
	return out
}

// NormalizeDate reduces timestamps such as "2024-03-01T00:00:00Z" to the
// calendar date. Unparseable values are returned trimmed but unchanged.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(DateLayout) {
		if _, err := time.Parse(DateLayout, raw[:len(DateLayout)]); err == nil {
			return raw[:len(DateLayout)]
		}
	}
	return raw
}
