package style

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmtgate/fmtgate/internal/config"
)

// fakeRunner is an in-memory formatter.Runner. Its canonical form strips
// trailing whitespace from every line and guarantees a final newline, so
// tests can construct passing and failing files trivially.
type fakeRunner struct {
	version    string
	versionErr error
	renderErr  error
	rewriteErr error

	renderCalls  []string
	rewriteCalls []string
}

func (f *fakeRunner) canonical(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	out := strings.Join(lines, "\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out)
}

func (f *fakeRunner) Version(_ context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	if f.version == "" {
		return "fake clang-format version 19.1.0", nil
	}
	return f.version, nil
}

func (f *fakeRunner) Render(_ context.Context, path string) ([]byte, error) {
	f.renderCalls = append(f.renderCalls, path)
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.canonical(data), nil
}

func (f *fakeRunner) Rewrite(_ context.Context, path string) error {
	f.rewriteCalls = append(f.rewriteCalls, path)
	if f.rewriteErr != nil {
		return f.rewriteErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, f.canonical(data), 0o644)
}

// writeTree creates files (relative path -> content) under a fresh temp dir
// and returns a config rooted there.
func writeTree(t *testing.T, files map[string]string) (string, *config.Config) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.SourceDirs = []string{filepath.Join(root, "src")}
	return root, cfg
}
