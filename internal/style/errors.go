package style

import (
	"fmt"
)

// MissingSourceDirError reports a configured source directory that does not exist.
type MissingSourceDirError struct {
	Path    string
	Wrapped error
}

func (e *MissingSourceDirError) Error() string {
	return fmt.Sprintf("source directory missing: %s", e.Path)
}

func (e *MissingSourceDirError) Unwrap() error {
	return e.Wrapped
}

// NotADirectoryError reports a configured source path that exists but is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("source path is not a directory: %s", e.Path)
}

// DiffUnavailableError reports a mismatching file whose diff could not be
// rendered, typically because the content is not valid UTF-8.
type DiffUnavailableError struct {
	Path    string
	Wrapped error
}

func (e *DiffUnavailableError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("cannot render diff for %s: %v", e.Path, e.Wrapped)
	}
	return fmt.Sprintf("cannot render diff for %s: content is not valid UTF-8 text", e.Path)
}

func (e *DiffUnavailableError) Unwrap() error {
	return e.Wrapped
}

// CheckFailedError is the terminal error of a check run that found files
// deviating from the formatter's canonical output.
type CheckFailedError struct {
	Count int
}

func (e *CheckFailedError) Error() string {
	if e.Count == 1 {
		return "1 file needs formatting (run 'fmtgate apply' to fix)"
	}
	return fmt.Sprintf("%d files need formatting (run 'fmtgate apply' to fix)", e.Count)
}
