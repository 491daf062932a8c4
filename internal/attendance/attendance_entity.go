package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// DateLayout is the calendar-date format used by the API and the forms.
const DateLayout = "2006-01-02"

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Record is one employee's status for one day. EmployeeName is never sent by
// the API; it is joined from the employee list on every fetch.
type Record struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     Status `json:"status"`

	EmployeeName string `json:"-"`
	// Unresolved marks a record whose employee is no longer in the directory.
	Unresolved bool `json:"-"`
}

// Summary holds the per-employee counts shown on the summary cards.
type Summary struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
}
