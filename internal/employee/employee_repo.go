package employee

import (
	"context"
	"net/url"

	"go-hris-web/internal/apiclient"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, empl Employee) (Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

type repository struct {
	client *apiclient.Client
}

// NewRepository reads and writes employees through the remote API.
func NewRepository(client *apiclient.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	if err := r.client.Get(ctx, "/employees", nil, &empls); err != nil {
		return nil, mapListError(err)
	}
	if empls == nil {
		empls = []Employee{}
	}
	return empls, nil
}

func (r *repository) Create(ctx context.Context, empl Employee) (Employee, error) {
	var created Employee
	if err := r.client.Post(ctx, "/employees", empl, &created); err != nil {
		return Employee{}, mapCreateError(err)
	}
	if created.EmployeeID == "" {
		created = empl
	}
	return created, nil
}

func (r *repository) Delete(ctx context.Context, employeeID string) error {
	return mapDeleteError(r.client.Delete(ctx, "/employees/"+url.PathEscape(employeeID), nil))
}
