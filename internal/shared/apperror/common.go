package apperror

import (
	"net/http"
	"strings"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrUpstreamUnavailable = New(
		CodeUpstreamFailure,
		"The HR service is unavailable",
		http.StatusBadGateway,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" is required",
		http.StatusUnprocessableEntity,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		"Valid "+strings.ToLower(field)+" is required",
		http.StatusUnprocessableEntity,
	)
}
