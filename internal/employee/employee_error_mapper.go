package employee

import (
	"go-hris-web/internal/apiclient"
	employeeerrors "go-hris-web/internal/employee/errors"
)

func mapCreateError(err error) error {
	if err == nil {
		return nil
	}
	if apiclient.IsConflict(err) {
		return employeeerrors.ErrEmployeeAlreadyExists.WithCause(err)
	}
	return employeeerrors.ErrCreateFailed.WithCause(err)
}

func mapDeleteError(err error) error {
	if err == nil {
		return nil
	}
	return employeeerrors.ErrDeleteFailed.WithCause(err)
}

func mapListError(err error) error {
	if err == nil {
		return nil
	}
	return employeeerrors.ErrLoadFailed.WithCause(err)
}
