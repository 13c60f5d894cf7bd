package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fmtgate/fmtgate/internal/style"
)

// JSONReporter renders a report as JSON for automation.
type JSONReporter struct{}

type jsonFile struct {
	Path    string `json:"path"`
	Verdict string `json:"verdict"`
	Diff    string `json:"diff,omitempty"`
	Note    string `json:"note,omitempty"`
}

type jsonOutput struct {
	Mode      string `json:"mode"`
	Formatter struct {
		Command string `json:"command"`
		Version string `json:"version"`
	} `json:"formatter"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		Scanned         int `json:"scanned"`
		Formatted       int `json:"formatted"`
		NeedsFormatting int `json:"needsFormatting"`
	} `json:"stats"`
	Files []jsonFile `json:"files"`
}

func (jr *JSONReporter) Write(w io.Writer, r *style.Report) error {
	out := jsonOutput{
		Mode:      string(r.Mode),
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.EndTime.Sub(r.StartTime).String(),
		Files:     make([]jsonFile, 0, len(r.Results)),
	}
	out.Formatter.Command = r.Tool
	out.Formatter.Version = r.ToolVersion

	for _, res := range r.Results {
		out.Files = append(out.Files, jsonFile{
			Path:    res.Path,
			Verdict: res.Verdict.String(),
			Diff:    res.Diff,
			Note:    res.Note,
		})

		switch res.Verdict {
		case style.VerdictFormatted:
			out.Stats.Formatted++
		case style.VerdictNeedsFormatting:
			out.Stats.NeedsFormatting++
		}
	}
	out.Stats.Scanned = r.Scanned()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
