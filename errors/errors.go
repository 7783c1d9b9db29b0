// Package errors provides the application error type and re-exports common
// wrapping helpers so that callers only need one errors import.
package errors

import "github.com/pkg/errors"

var (
	New    = errors.New
	Errorf = errors.Errorf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
)

// Type classifies an Error for reporting purposes.
type Type int

const (
	Unknown Type = iota
	Exec         // A subprocess could not be run or exited non-zero.
	User         // The user's input or project layout is at fault.
)

// Error is an application-level error with user-facing troubleshooting.
type Error struct {
	Cause           error
	Type            Type
	Message         string
	Troubleshooting string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Troubleshooting != "" {
		msg += renderTroubleshooting(e.Troubleshooting)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
