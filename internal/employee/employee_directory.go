package employee

import (
	"context"
	"errors"
	"fmt"
)

// ErrRefreshFailed means the write went through but the list could not be
// re-read afterwards.
var ErrRefreshFailed = errors.New("employee: refresh after write failed")

// Directory holds the employee list of one page view. Every successful
// mutation is followed by a full re-fetch; the list is never patched locally.
type Directory struct {
	repo      Repository
	employees []Employee
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo, employees: []Employee{}}
}

func (d *Directory) Refresh(ctx context.Context) error {
	empls, err := d.repo.List(ctx)
	if err != nil {
		return err
	}
	d.employees = empls
	return nil
}

// Employees returns the list in API order.
func (d *Directory) Employees() []Employee {
	return d.employees
}

func (d *Directory) Create(ctx context.Context, empl Employee) (Employee, error) {
	created, err := d.repo.Create(ctx, empl)
	if err != nil {
		return Employee{}, err
	}
	if err := d.Refresh(ctx); err != nil {
		return created, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return created, nil
}

func (d *Directory) Delete(ctx context.Context, employeeID string) error {
	if err := d.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	if err := d.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return nil
}
