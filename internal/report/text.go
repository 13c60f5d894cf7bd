// Package report renders run reports for humans and machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fmtgate/fmtgate/internal/style"
)

const timeResolution = time.Millisecond

// Styles holds the lipgloss styles used by the text reporter.
type Styles struct {
	Header   lipgloss.Style
	Pass     lipgloss.Style
	Fail     lipgloss.Style
	Subtle   lipgloss.Style
	DiffDel  lipgloss.Style
	DiffAdd  lipgloss.Style
	DiffHunk lipgloss.Style
}

// NewStyles returns the coloured style set.
func NewStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Pass:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Fail:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // grey
		DiffDel:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red: current content
		DiffAdd:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green: expected content
		DiffHunk: lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan: hunk headers
	}
}

// NoStyles returns a style set that renders text unchanged.
func NoStyles() Styles {
	return Styles{}
}

// TextReporter renders a report as human-readable text with optional colour.
type TextReporter struct {
	Verbose bool
	Styles  Styles
}

const divider = "------------------------------------------------------------"

func (tr *TextReporter) Write(w io.Writer, r *style.Report) error {
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, tr.Styles.Header.Render(fmt.Sprintf("FMTGATE %s REPORT", strings.ToUpper(string(r.Mode)))))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s (%s)\n", tr.Styles.Subtle.Render("Formatter:"), r.Tool, r.ToolVersion)
	fmt.Fprintf(w, "%s %s\n", tr.Styles.Subtle.Render("Duration: "), r.EndTime.Sub(r.StartTime).Round(timeResolution).String())
	fmt.Fprintln(w, divider)

	for _, res := range r.Results {
		switch res.Verdict {
		case style.VerdictFormatted:
			if tr.Verbose || r.Mode == style.ModeApply {
				fmt.Fprintf(w, "%s %s\n", tr.Styles.Pass.Render("[OK]"), res.Path)
			}
		case style.VerdictNeedsFormatting:
			fmt.Fprintf(w, "%s %s\n", tr.Styles.Fail.Render("[X]"), res.Path)
			tr.writeDiff(w, res)
		}
	}

	fmt.Fprintln(w, divider)
	tr.writeSummary(w, r)
	fmt.Fprintln(w, divider)
	return nil
}

// writeDiff prints the per-file diff indented, colour-tagging removed lines,
// added lines and hunk headers.
func (tr *TextReporter) writeDiff(w io.Writer, res style.FileResult) {
	if res.Diff == "" {
		if res.Note != "" {
			fmt.Fprintf(w, "    %s\n", tr.Styles.Subtle.Render("(diff unavailable: "+res.Note+")"))
		}
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(res.Diff, "\n"), "\n") {
		var rendered string
		switch {
		case strings.HasPrefix(line, "-"):
			rendered = tr.Styles.DiffDel.Render(line)
		case strings.HasPrefix(line, "+"):
			rendered = tr.Styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "@"):
			rendered = tr.Styles.DiffHunk.Render(line)
		default:
			rendered = line
		}
		fmt.Fprintf(w, "    %s\n", rendered)
	}
}

func (tr *TextReporter) writeSummary(w io.Writer, r *style.Report) {
	if r.Mode == style.ModeApply {
		label := tr.Styles.Header.Render("Apply summary:")
		fmt.Fprintf(w, "%s %d files formatted\n", label, r.Scanned())
		return
	}
	label := tr.Styles.Header.Render("Check summary:")

	failed := len(r.NeedsFormatting())
	stats := fmt.Sprintf("%d scanned, %d need formatting", r.Scanned(), failed)
	if failed > 0 {
		fmt.Fprintf(w, "%s %s\n", label, tr.Styles.Fail.Render(stats))
		return
	}
	fmt.Fprintf(w, "%s %s\n", label, tr.Styles.Pass.Render(stats+" - all files formatted correctly"))
}
