package wikisite

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	EFETCH    = "fetch"
	EEXTRACT  = "extract"
	EGENERATE = "generate"
	EPACKAGE  = "package"
	EPREVIEW  = "preview"
	EINTERNAL = "internal"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message. Any non-application
// error (such as a network failure) is reported as EINTERNAL to the end user.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Status is the upstream HTTP status code for EFETCH errors, zero otherwise.
	Status int
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("wikisite error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus unwraps an application error and returns the upstream status
// code attached to it, if any.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusErrorf returns an EFETCH error carrying the upstream status code.
func StatusErrorf(status int, format string, args ...any) *Error {
	return &Error{
		Code:    EFETCH,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}
