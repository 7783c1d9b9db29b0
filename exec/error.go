package exec

import (
	"fmt"
	"strings"
)

// Error is returned when a command could not be spawned or exited with a
// failure status. It carries the captured output so that callers can decide
// whether a partial result is still usable.
type Error struct {
	Name   string
	Argv   []string
	Stdout string
	Stderr string
	Cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not run `%s`: %s", strings.Join(append([]string{e.Name}, e.Argv...), " "), e.Cause.Error())
}

func (e *Error) Unwrap() error {
	return e.Cause
}
