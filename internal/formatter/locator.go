package formatter

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fmtgate/fmtgate/internal/fs"
)

// Locate resolves the formatter executable for the current environment.
// A copy colocated with the running fmtgate binary is preferred (the layout
// produced by toolchain-local installs), falling back to the bare name for
// PATH resolution at invocation time. Locate never fails; a missing
// executable surfaces when the formatter is first invoked.
func Locate(executable string) string {
	self, err := os.Executable()
	if err != nil {
		return executable
	}
	return locate(executable, filepath.Dir(self), runtime.GOOS, fs.FileExists)
}

// locate is the pure core of Locate, parameterised for tests.
func locate(executable, binDir, goos string, exists func(string) bool) string {
	// An explicit path in the config is taken as-is.
	if strings.ContainsAny(executable, `/\`) {
		return executable
	}

	name := executable
	if goos == "windows" && filepath.Ext(name) == "" {
		name += ".exe"
	}

	candidate := filepath.Join(binDir, name)
	if exists(candidate) {
		return candidate
	}
	return executable
}
