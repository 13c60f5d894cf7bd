package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmtgate/fmtgate/internal/config"
	"github.com/fmtgate/fmtgate/internal/style"
)

// fakeManager records the last invocation of each Manager operation.
type fakeManager struct {
	cfg *config.Config

	checkOpts *RunOptions
	applyOpts *RunOptions
	watched   bool

	checkErr error
	applyErr error
	watchErr error
}

func (f *fakeManager) Check(_ context.Context, opts RunOptions) error {
	f.checkOpts = &opts
	return f.checkErr
}

func (f *fakeManager) Apply(_ context.Context, opts RunOptions) error {
	f.applyOpts = &opts
	return f.applyErr
}

func (f *fakeManager) Watch(_ context.Context, readyChan chan<- struct{}) error {
	f.watched = true
	if readyChan != nil {
		readyChan <- struct{}{}
	}
	return f.watchErr
}

func (f *fakeManager) Config() *config.Config {
	return f.cfg
}

// fakeRunner is a formatter.Runner that serves canned content. Render returns
// the canonical entry for the path when one exists, otherwise the file's
// current content. Rewrite installs the canonical entry on disk.
type fakeRunner struct {
	version    string
	versionErr error
	renderErr  error
	rewriteErr error

	// canonical maps absolute paths to their formatted content.
	canonical map[string]string

	rewrites []string
}

func (f *fakeRunner) Version(context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	if f.version == "" {
		return "clang-format version 19.1.0", nil
	}
	return f.version, nil
}

func (f *fakeRunner) Render(_ context.Context, path string) ([]byte, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	if want, ok := f.canonical[path]; ok {
		return []byte(want), nil
	}
	return os.ReadFile(path)
}

func (f *fakeRunner) Rewrite(_ context.Context, path string) error {
	if f.rewriteErr != nil {
		return f.rewriteErr
	}
	f.rewrites = append(f.rewrites, path)
	if want, ok := f.canonical[path]; ok {
		return os.WriteFile(path, []byte(want), 0o644)
	}
	return nil
}

// writeSourceTree creates a temp directory with the given files under src/ and
// returns the tree root plus a config whose source dir points at it.
func writeSourceTree(t *testing.T, files map[string]string) (string, *config.Config) {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, "src", rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.SourceDirs = []string{filepath.Join(root, "src")}
	return root, cfg
}

// newTestManager builds a CLIManager over the given tree and runner, with its
// report output captured in the returned buffer.
func newTestManager(cfg *config.Config, r *fakeRunner) (*CLIManager, *bytes.Buffer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var buf bytes.Buffer
	m := NewCLIManager(logger, cfg, "clang-format", r, style.NewWalker(cfg), &buf)
	return m, &buf
}
