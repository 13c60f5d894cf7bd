package style

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtgate/fmtgate/internal/formatter"
)

func TestCheckerAllFormatted(t *testing.T) {
	t.Parallel()

	_, cfg := writeTree(t, map[string]string{
		"src/a.cpp": "int a;\n",
		"src/b.h":   "int b;\n",
	})
	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	require.NoError(t, NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report))

	assert.Equal(t, 2, report.Scanned())
	assert.True(t, report.OK())
	assert.Empty(t, report.NeedsFormatting())
	assert.False(t, report.EndTime.IsZero())
}

func TestCheckerReportsMismatches(t *testing.T) {
	t.Parallel()

	root, cfg := writeTree(t, map[string]string{
		"src/good.cpp": "int a;\n",
		"src/bad.cpp":  "int b;\t\n", // trailing whitespace: needs formatting
	})
	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	require.NoError(t, NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report))

	assert.Equal(t, 2, report.Scanned())
	assert.False(t, report.OK())

	failing := report.NeedsFormatting()
	require.Len(t, failing, 1)
	assert.Equal(t, filepath.Join(root, "src", "bad.cpp"), failing[0].Path)
	assert.Contains(t, failing[0].Diff, "Current (bad.cpp)")
	assert.Contains(t, failing[0].Diff, "Expected (bad.cpp)")
	assert.Contains(t, failing[0].Diff, "-int b;\t\n")
	assert.Contains(t, failing[0].Diff, "+int b;\n")
	assert.Empty(t, failing[0].Note)
}

func TestCheckerContinuesAfterMismatch(t *testing.T) {
	t.Parallel()

	_, cfg := writeTree(t, map[string]string{
		"src/a.cpp": "a", // all three deviate
		"src/b.cpp": "b",
		"src/c.cpp": "c",
	})
	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	require.NoError(t, NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report))
	assert.Len(t, report.NeedsFormatting(), 3, "check mode is exhaustive, not fail-fast")
	assert.Len(t, runner.renderCalls, 3)
}

func TestCheckerAbortsOnFormatterFailure(t *testing.T) {
	t.Parallel()

	_, cfg := writeTree(t, map[string]string{
		"src/a.cpp": "a\n",
		"src/b.cpp": "b\n",
	})
	runner := &fakeRunner{renderErr: &formatter.RunFailedError{Path: "src/a.cpp"}}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	err := NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report)
	var target *formatter.RunFailedError
	require.ErrorAs(t, err, &target)
	assert.Len(t, runner.renderCalls, 1, "invocation failure is fatal, not a mismatch")
}

func TestCheckerBinaryContentStillCounted(t *testing.T) {
	t.Parallel()

	_, cfg := writeTree(t, map[string]string{
		"src/weird.cpp": "\xff\xfe\x00int", // not valid UTF-8, and not canonical
	})
	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	require.NoError(t, NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report))

	failing := report.NeedsFormatting()
	require.Len(t, failing, 1, "undiffable content still counts as needing formatting")
	assert.Empty(t, failing[0].Diff)
	assert.Contains(t, failing[0].Note, "not valid UTF-8")
}

func TestCheckerHonoursContext(t *testing.T) {
	t.Parallel()

	_, cfg := writeTree(t, map[string]string{"src/a.cpp": "a\n"})
	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewChecker(runner, NewWalker(cfg)).Run(ctx, report)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, runner.renderCalls)
}

func TestCheckerUnreadableFileIsFatal(t *testing.T) {
	t.Parallel()
	if os.Getuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	root, cfg := writeTree(t, map[string]string{"src/a.cpp": "a\n"})
	require.NoError(t, os.Chmod(filepath.Join(root, "src", "a.cpp"), 0o000))

	runner := &fakeRunner{}
	report := NewReport(ModeCheck, "clang-format", "19.1.0")

	err := NewChecker(runner, NewWalker(cfg)).Run(context.Background(), report)
	require.Error(t, err)
}
