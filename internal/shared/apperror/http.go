package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-facing shape of any error returned by a service.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves err to the status/code/message a handler should write.
// Unknown errors never leak their text.
func ToHTTP(err error) HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return HTTPError{
			Status:  http.StatusUnprocessableEntity,
			Code:    CodeInvalidInput,
			Message: "Input tidak valid",
			Details: verr.Fields,
		}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
