package style

import (
	"context"
	"time"

	"github.com/fmtgate/fmtgate/internal/formatter"
)

// Applier implements apply mode: every matching file is rewritten in place.
// Unlike check mode the run is fail-fast: the first invocation failure stops
// the whole run with no partial continuation.
type Applier struct {
	runner formatter.Runner
	walker *Walker
}

// NewApplier creates an Applier over the given runner and walker.
func NewApplier(r formatter.Runner, w *Walker) *Applier {
	return &Applier{runner: r, walker: w}
}

// Run rewrites all matching files sequentially, recording one result per
// processed file. The context cancels the run between files.
func (a *Applier) Run(ctx context.Context, report *Report) error {
	defer func() { report.EndTime = time.Now() }()

	return a.walker.Walk(func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := a.runner.Rewrite(ctx, path); err != nil {
			return err
		}

		report.Add(FileResult{Path: path, Verdict: VerdictFormatted})
		return nil
	})
}
