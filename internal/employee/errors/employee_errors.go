package employeeerrors

import (
	"go-hris-web/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists",
		http.StatusConflict,
	)
	ErrCreateFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to add employee",
		http.StatusBadGateway,
	)
	// Delete failures are not split by status code.
	ErrDeleteFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to delete employee",
		http.StatusBadGateway,
	)
	ErrLoadFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to load employees",
		http.StatusBadGateway,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
