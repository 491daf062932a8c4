package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError is returned for every failed call: a non-2xx response
// (Status set) or a request that never produced one (Status == 0).
type TransportError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Status
	}
	return 0
}

func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
