package attendance

import (
	"net/url"
	"strings"
	"time"

	"go-hris-web/internal/employee"
	"go-hris-web/internal/page"
)

type MarkAttendanceForm struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
	Status     Status `form:"status" binding:"required,oneof=Present Absent"`
}

var markFormMessages = map[string]string{
	"employee_id.required": "Please select an employee",
	"date.required":        "Date is required",
	"date.datetime":        "Date must be in YYYY-MM-DD format",
	"status.required":      "Status is required",
	"status.oneof":         "Status must be Present or Absent",
}

// DefaultForm is the empty attendance form: today's date, Present.
func DefaultForm(now time.Time) MarkAttendanceForm {
	return MarkAttendanceForm{
		Date:   now.UTC().Format(DateLayout),
		Status: StatusPresent,
	}
}

func (f *MarkAttendanceForm) normalize() {
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.Date = strings.TrimSpace(f.Date)
	f.Status = Status(strings.TrimSpace(string(f.Status)))
}

func (f MarkAttendanceForm) toRecord() Record {
	return Record{
		EmployeeID: f.EmployeeID,
		Date:       f.Date,
		Status:     f.Status,
	}
}

// Query is the page's filter state, carried in the URL.
type Query struct {
	// Selected narrows the records table to one employee; "" shows all.
	Selected string
	// Date switches the page to the by-date listing; "" lists per employee.
	Date string
}

func (q *Query) normalize() {
	q.Selected = strings.TrimSpace(q.Selected)
	q.Date = strings.TrimSpace(q.Date)
	if q.Date == "" {
		return
	}
	if _, err := time.Parse(DateLayout, q.Date); err != nil {
		q.Date = ""
	}
}

// URL is the page address that reproduces this filter state.
func (q Query) URL() string {
	values := url.Values{}
	if q.Selected != "" {
		values.Set("employee", q.Selected)
	}
	if q.Date != "" {
		values.Set("date", q.Date)
	}
	if len(values) == 0 {
		return "/attendance"
	}
	return "/attendance?" + values.Encode()
}

// View is everything the attendance page renders.
type View struct {
	Phase       page.Phase
	Employees   []employee.Employee
	Summary     []Summary
	Records     []Record
	Query       Query
	Notice      *page.Notice
	Form        MarkAttendanceForm
	FieldErrors map[string]string
}

func (v View) Loading() bool {
	return v.Phase == page.PhaseLoading
}

// NoEmployees is the "add employees first" state.
func (v View) NoEmployees() bool {
	return !v.Loading() && len(v.Employees) == 0
}

func (v View) NoRecords() bool {
	return len(v.Records) == 0
}

func (v View) IsSelected(employeeID string) bool {
	return v.Query.Selected != "" && v.Query.Selected == employeeID
}

// ToggleLink is the filter value a summary card links to.
func (v View) ToggleLink(employeeID string) string {
	return ToggleSelection(v.Query.Selected, employeeID)
}

func (v View) FieldError(field string) string {
	return v.FieldErrors[field]
}
