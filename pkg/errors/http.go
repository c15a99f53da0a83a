package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the public message
// to send back to the caller.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// InternalServerErrorMessage is the only text a caller ever sees for a 500.
const InternalServerErrorMessage = "Server error creating booking."

// ErrInternalServerError is the fallback for errors that have no explicit mapping.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, InternalServerErrorMessage)

// AsHTTPError unwraps err into an *HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
