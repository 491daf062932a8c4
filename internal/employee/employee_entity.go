package employee

// Employee mirrors the remote API resource. EmployeeID is chosen by the user
// and never changes after creation.
type Employee struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
