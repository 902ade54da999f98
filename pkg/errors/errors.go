package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed failure of a Canvas run. Status carries the upstream HTTP status when
// the failure came from a Canvas response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so callers can match against the
// predefined values with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors, one per failure class of a run.
var (
	ErrConfiguration   = New("CONFIGURATION_ERROR", "invalid configuration")
	ErrAuthentication  = New("AUTHENTICATION_ERROR", "unable to authenticate with canvas")
	ErrRetrieval       = New("RETRIEVAL_ERROR", "unable to retrieve courses")
	ErrValidation      = New("VALIDATION_ERROR", "response failed schema validation")
	ErrTimestampFormat = New("TIMESTAMP_FORMAT_ERROR", "invalid timestamp format")
	ErrInternal        = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithStatus returns a copy of err carrying the upstream HTTP status.
func WithStatus(err *Error, status int, message string) *Error {
	clone := Clone(err, message)
	if clone != nil {
		clone.Status = status
	}
	return clone
}

// CodeOf returns the code of err, or ErrInternal's code for untyped errors.
func CodeOf(err error) string {
	if e := FromError(err); e != nil {
		return e.Code
	}
	return ""
}
