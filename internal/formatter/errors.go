package formatter

import (
	"fmt"
)

// NotInvocableError reports that the formatter executable could not be run at
// all (missing binary, permission problem). It aborts a run before any file
// is scanned.
type NotInvocableError struct {
	Command string
	Wrapped error
}

func (e *NotInvocableError) Error() string {
	return fmt.Sprintf("cannot execute formatter '%s': %v (is clang-format installed?)", e.Command, e.Wrapped)
}

func (e *NotInvocableError) Unwrap() error {
	return e.Wrapped
}

// RunFailedError reports a formatter invocation that started but exited
// non-zero, e.g. on unparsable source.
type RunFailedError struct {
	Path    string
	Stderr  string
	Wrapped error
}

func (e *RunFailedError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("formatter failed on %s: %v: %s", e.Path, e.Wrapped, e.Stderr)
	}
	return fmt.Sprintf("formatter failed on %s: %v", e.Path, e.Wrapped)
}

func (e *RunFailedError) Unwrap() error {
	return e.Wrapped
}
