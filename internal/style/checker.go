package style

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/fmtgate/fmtgate/internal/formatter"
)

// Checker implements check mode: every matching file is compared
// byte-for-byte against the formatter's canonical output. Mismatches are
// recorded and the scan continues; a failed formatter invocation aborts the
// whole run (that is an environment problem, not a formatting one).
type Checker struct {
	runner formatter.Runner
	walker *Walker
}

// NewChecker creates a Checker over the given runner and walker.
func NewChecker(r formatter.Runner, w *Walker) *Checker {
	return &Checker{runner: r, walker: w}
}

// Run scans all configured directories sequentially and returns the
// accumulated report. The context cancels the run between files.
func (c *Checker) Run(ctx context.Context, report *Report) error {
	defer func() { report.EndTime = time.Now() }()

	return c.walker.Walk(func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		current, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		expected, err := c.runner.Render(ctx, path)
		if err != nil {
			return err
		}

		if bytes.Equal(current, expected) {
			report.Add(FileResult{Path: path, Verdict: VerdictFormatted})
			return nil
		}

		res := FileResult{Path: path, Verdict: VerdictNeedsFormatting}
		diff, dErr := unifiedDiff(path, current, expected)
		if dErr != nil {
			res.Note = dErr.Error()
		} else {
			res.Diff = diff
		}
		report.Add(res)
		return nil
	})
}
