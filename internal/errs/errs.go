// Package errs holds the error shape handlers hand to the page layer.
//
// Handlers never return raw store errors to the client: a failure becomes an
// HTTPError carrying a status, a machine code and a generic message, with
// per-field details for bad form input.
package errs

import (
	"net/http"
	"strings"
)

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{
		Code:    codeFor(status),
		Message: message,
		Status:  status,
	}
}

func NewBadRequestError(message string, fields []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	e.Errors = fields
	return e
}

func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewInternalServerError never carries the underlying cause.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, "")
}

// codeFor turns "Not Found" into "NOT_FOUND".
func codeFor(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
