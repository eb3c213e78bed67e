package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/skarvsladd/wikisite"
)

// reportedError marks an error whose message has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report prints err's user-facing message and marks it as shown.
func report(w io.Writer, err error) error {
	fmt.Fprintf(w, "error: %s\n", wikisite.ErrorMessage(err))
	return &reportedError{err: err}
}

// Reported reports whether err's message was already printed by a command.
func Reported(err error) bool {
	var e *reportedError
	return errors.As(err, &e)
}

// ReportUnhandled prints errors no command has shown yet, such as flag
// parsing failures. Errors already printed are not repeated.
func ReportUnhandled(w io.Writer, err error) {
	if err == nil || Reported(err) {
		return
	}
	var e *wikisite.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", e.Message)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
