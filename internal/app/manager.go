package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fmtgate/fmtgate/internal/config"
	"github.com/fmtgate/fmtgate/internal/formatter"
	"github.com/fmtgate/fmtgate/internal/report"
	"github.com/fmtgate/fmtgate/internal/style"
)

// RunOptions carries the presentation flags shared by check and apply.
type RunOptions struct {
	Verbose   bool
	Format    string
	UseColour bool
}

// Manager defines the business logic for formatting operations.
type Manager interface {
	Check(ctx context.Context, opts RunOptions) error
	Apply(ctx context.Context, opts RunOptions) error
	Watch(ctx context.Context, readyChan chan<- struct{}) error
	Config() *config.Config
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Check(ctx context.Context, opts RunOptions) error {
	return l.check().Check(ctx, opts)
}

func (l *LazyManager) Apply(ctx context.Context, opts RunOptions) error {
	return l.check().Apply(ctx, opts)
}

func (l *LazyManager) Watch(ctx context.Context, readyChan chan<- struct{}) error {
	return l.check().Watch(ctx, readyChan)
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	cfg            *config.Config
	command        string
	runner         formatter.Runner
	walker         *style.Walker
	reporterWriter io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	cfg *config.Config,
	command string,
	r formatter.Runner,
	w *style.Walker,
	out io.Writer,
) *CLIManager {
	if out == nil {
		out = os.Stdout
	}
	return &CLIManager{
		logger:         l,
		cfg:            cfg,
		command:        command,
		runner:         r,
		walker:         w,
		reporterWriter: out,
	}
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

// Check compares every matching file against the formatter's canonical output
// and reports deviations. It returns a CheckFailedError when any file needs
// formatting, so the CLI exits non-zero.
func (m *CLIManager) Check(ctx context.Context, opts RunOptions) error {
	m.logger.Debug("checking format", "command", m.command, "verbose", opts.Verbose,
		"format", opts.Format, "useColour", opts.UseColour)

	version, err := m.runner.Version(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("Checking format", "formatter", m.command, "version", version)

	r := style.NewReport(style.ModeCheck, m.command, version)
	if err := style.NewChecker(m.runner, m.walker).Run(ctx, r); err != nil {
		return err
	}

	if rErr := m.reporter(opts).Write(m.reporterWriter, r); rErr != nil {
		return rErr
	}

	if failed := len(r.NeedsFormatting()); failed > 0 {
		return &style.CheckFailedError{Count: failed}
	}
	return nil
}

// Apply rewrites every matching file in place. The first formatter failure
// aborts the run.
func (m *CLIManager) Apply(ctx context.Context, opts RunOptions) error {
	m.logger.Debug("applying format", "command", m.command, "verbose", opts.Verbose,
		"format", opts.Format, "useColour", opts.UseColour)

	version, err := m.runner.Version(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("Applying format", "formatter", m.command, "version", version)

	r := style.NewReport(style.ModeApply, m.command, version)
	if err := style.NewApplier(m.runner, m.walker).Run(ctx, r); err != nil {
		return err
	}

	return m.reporter(opts).Write(m.reporterWriter, r)
}

// Watch formats matching files as they are saved, until the context is
// cancelled. If you want to know when the watcher is ready to start listening
// to changes, pass a non-nil readyChan to be notified.
func (m *CLIManager) Watch(ctx context.Context, readyChan chan<- struct{}) error {
	version, err := m.runner.Version(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("Watch mode", "formatter", m.command, "version", version)

	watcher := style.NewWatcher(m.walker, m.logger)

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	return watcher.Watch(ctx, m.formatOnSave(ctx))
}

// formatOnSave returns the per-file callback used in watch mode. It renders
// first and skips the rewrite when the file is already canonical, so the
// rewrite itself does not trigger another watch event.
func (m *CLIManager) formatOnSave(ctx context.Context) func(path string) error {
	return func(path string) error {
		current, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		expected, err := m.runner.Render(ctx, path)
		if err != nil {
			return err
		}

		if bytes.Equal(current, expected) {
			m.logger.Debug("already formatted", "path", path)
			return nil
		}

		if err := m.runner.Rewrite(ctx, path); err != nil {
			return err
		}

		m.logger.Info("Formatted", "path", path)
		return nil
	}
}

func (m *CLIManager) reporter(opts RunOptions) style.Reporter {
	if opts.Format == "json" {
		return &report.JSONReporter{}
	}

	styles := report.NoStyles()
	if opts.UseColour {
		styles = report.NewStyles()
	}
	return &report.TextReporter{Verbose: opts.Verbose, Styles: styles}
}
