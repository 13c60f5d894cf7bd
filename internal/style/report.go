package style

import (
	"io"
	"time"
)

// Mode identifies which workflow produced a report.
type Mode string

const (
	ModeCheck Mode = "check"
	ModeApply Mode = "apply"
)

// Verdict is the outcome for a single scanned file.
type Verdict int

const (
	// VerdictFormatted means the file matches (or now matches) the
	// formatter's canonical output.
	VerdictFormatted Verdict = iota

	// VerdictNeedsFormatting means the file's current content differs from
	// the formatter's canonical output.
	VerdictNeedsFormatting
)

func (v Verdict) String() string {
	switch v {
	case VerdictFormatted:
		return "formatted"
	case VerdictNeedsFormatting:
		return "needs-formatting"
	}
	return "unknown"
}

// FileResult records the verdict for one scanned file.
type FileResult struct {
	Path    string
	Verdict Verdict

	// Diff holds the unified diff between current and expected content for
	// check-mode mismatches. Empty when the verdict is VerdictFormatted or
	// when the diff could not be produced.
	Diff string

	// Note explains a missing diff (e.g. non-UTF-8 content).
	Note string
}

// Report aggregates the results of one check or apply run.
type Report struct {
	Mode        Mode
	Tool        string
	ToolVersion string
	StartTime   time.Time
	EndTime     time.Time
	Results     []FileResult
}

// NewReport starts a report for the given mode and stamps the start time.
func NewReport(mode Mode, tool, toolVersion string) *Report {
	return &Report{
		Mode:        mode,
		Tool:        tool,
		ToolVersion: toolVersion,
		StartTime:   time.Now(),
	}
}

// Add appends one file's result.
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Scanned returns the number of files visited.
func (r *Report) Scanned() int {
	return len(r.Results)
}

// NeedsFormatting returns the results whose files deviate from canonical output.
func (r *Report) NeedsFormatting() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.Verdict == VerdictNeedsFormatting {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether the run found no deviations.
func (r *Report) OK() bool {
	return len(r.NeedsFormatting()) == 0
}

// Reporter renders a Report for human or machine consumption.
type Reporter interface {
	Write(w io.Writer, r *Report) error
}
