package formatter

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// CLIRunner is the concrete implementation of Runner that shells out to the
// formatter binary, one synchronous process per call.
type CLIRunner struct {
	command string
	style   string
}

// NewCLIRunner creates a CLIRunner for the given command (a name or path, as
// returned by Locate) and -style value.
func NewCLIRunner(command, style string) *CLIRunner {
	return &CLIRunner{command: command, style: style}
}

// Command returns the resolved command this runner invokes.
func (r *CLIRunner) Command() string {
	return r.command
}

func (r *CLIRunner) styleArg() string {
	return "-style=" + r.style
}

// Version runs `<command> --version` and returns the trimmed banner.
func (r *CLIRunner) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.command, "--version").Output()
	if err != nil {
		return "", &NotInvocableError{Command: r.command, Wrapped: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// Rewrite runs `<command> -i -style=<style> <path>`, formatting the file in place.
func (r *CLIRunner) Rewrite(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, r.command, "-i", r.styleArg(), path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &RunFailedError{
			Path:    path,
			Stderr:  strings.TrimSpace(stderr.String()),
			Wrapped: err,
		}
	}
	return nil
}

// Render runs `<command> -style=<style> <path>` and captures the formatted
// output from stdout. The file is not modified.
func (r *CLIRunner) Render(ctx context.Context, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.command, r.styleArg(), path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &RunFailedError{
			Path:    path,
			Stderr:  strings.TrimSpace(stderr.String()),
			Wrapped: err,
		}
	}
	return stdout.Bytes(), nil
}
