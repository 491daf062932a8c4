package employee

import (
	"strings"

	"go-hris-web/internal/page"
)

type CreateEmployeeForm struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	FullName   string `form:"full_name" binding:"required"`
	Email      string `form:"email" binding:"required,basic_email"`
	Department string `form:"department" binding:"required"`
}

var createFormMessages = map[string]string{
	"employee_id.required": "Employee ID is required",
	"full_name.required":   "Full Name is required",
	"email.required":       "Email is required",
	"email.basic_email":    "Valid email is required",
	"department.required":  "Department is required",
}

func (f *CreateEmployeeForm) normalize() {
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.FullName = strings.TrimSpace(f.FullName)
	// email diperiksa apa adanya; spasi di tepi membuatnya tidak valid
	if strings.TrimSpace(f.Email) == "" {
		f.Email = ""
	}
	f.Department = strings.TrimSpace(f.Department)
}

func (f CreateEmployeeForm) toEmployee() Employee {
	return Employee{
		EmployeeID: f.EmployeeID,
		FullName:   f.FullName,
		Email:      f.Email,
		Department: f.Department,
	}
}

// View is everything the employees page renders.
type View struct {
	Phase       page.Phase
	Employees   []Employee
	Notice      *page.Notice
	Form        CreateEmployeeForm
	FieldErrors map[string]string
	DialogOpen  bool
	// ConfirmDelete holds the employee id awaiting confirmation, if any.
	ConfirmDelete string
}

func (v View) Loading() bool {
	return v.Phase == page.PhaseLoading
}

// Empty is the "no employees yet" state of a finished load.
func (v View) Empty() bool {
	return !v.Loading() && len(v.Employees) == 0
}

// FieldError returns the validation message for one form field.
func (v View) FieldError(field string) string {
	return v.FieldErrors[field]
}
