package attendanceerrors

import (
	"go-hris-web/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for this date",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrMarkFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to mark attendance",
		http.StatusBadGateway,
	)
	ErrLoadFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to load attendance data",
		http.StatusBadGateway,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to export attendance",
		http.StatusInternalServerError,
	)
)
