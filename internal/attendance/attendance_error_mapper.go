package attendance

import (
	"go-hris-web/internal/apiclient"
	attendanceerrors "go-hris-web/internal/attendance/errors"
)

func mapMarkError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case apiclient.IsConflict(err):
		return attendanceerrors.ErrAlreadyMarked.WithCause(err)
	case apiclient.IsNotFound(err):
		return attendanceerrors.ErrEmployeeNotFound.WithCause(err)
	default:
		return attendanceerrors.ErrMarkFailed.WithCause(err)
	}
}

func mapListError(err error) error {
	if err == nil {
		return nil
	}
	return attendanceerrors.ErrLoadFailed.WithCause(err)
}
