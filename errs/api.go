package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ApiErr carries an HTTP status code alongside the error. Handlers return
// these; the responder turns anything else into a generic 500 so internal
// detail never reaches the client.
type ApiErr struct {
	StatusCode int
	err        error
	Cause      error // underlying cause, logged but not sent to the client
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr
// as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// GetFullError returns the message including the underlying cause, for
// server-side logs.
func (e *ApiErr) GetFullError() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s -> %s", e.err.Error(), e.Cause.Error())
	}
	return e.err.Error()
}

func (e *ApiErr) Unwrap() error {
	return e.err
}

// WithCause attaches an underlying error for logging.
func (e *ApiErr) WithCause(cause error) *ApiErr {
	e.Cause = cause
	return e
}

// Common error constructors with appropriate HTTP status codes

func NewBadRequestError(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *ApiErr {
	return NewApiErr(http.StatusUnauthorized, message)
}

func NewNotFoundError(message string) *ApiErr {
	return NewApiErr(http.StatusNotFound, message)
}

func NewInternalError(message string) *ApiErr {
	return NewApiErr(http.StatusInternalServerError, message)
}
