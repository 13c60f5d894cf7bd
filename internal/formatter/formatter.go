// Package formatter locates and invokes the external code formatter.
package formatter

import (
	"context"
)

// Runner defines the interface for formatter invocations. The zero cost of
// the abstraction buys testability: the style package and the CLI are
// exercised against in-memory fakes instead of a real clang-format binary.
type Runner interface {
	// Version returns the formatter's --version banner. It doubles as the
	// availability probe: an error here means the formatter cannot be
	// invoked at all and no file should be scanned.
	Version(ctx context.Context) (string, error)

	// Rewrite formats path in place (-i).
	Rewrite(ctx context.Context, path string) error

	// Render returns the formatted content of path on stdout without
	// touching the file.
	Render(ctx context.Context, path string) ([]byte, error)
}
