package style

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders a unified line-diff between a file's current content
// and the formatter's canonical output. Rendering is best-effort: content
// that is not valid UTF-8 cannot be line-diffed and yields a
// DiffUnavailableError, which callers report per-file without aborting.
func unifiedDiff(path string, current, expected []byte) (string, error) {
	if !utf8.Valid(current) || !utf8.Valid(expected) {
		return "", &DiffUnavailableError{Path: path}
	}

	name := filepath.Base(path)
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(expected)),
		FromFile: "Current (" + name + ")",
		ToFile:   "Expected (" + name + ")",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", &DiffUnavailableError{Path: path, Wrapped: err}
	}
	return text, nil
}
