// Package style implements the format-check and format-apply workflows over
// a configured source tree.
package style

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fmtgate/fmtgate/internal/config"
)

// Visitor is invoked once per matching file, in walk order.
type Visitor func(path string) error

// Walker enumerates the files a run operates on: every file under the
// configured source directories whose name ends in a configured extension.
// Traversal is synchronous and depth-first in directory order.
type Walker struct {
	sourceDirs []string
	extensions []string
}

// NewWalker creates a Walker from the resolved configuration.
func NewWalker(cfg *config.Config) *Walker {
	return &Walker{
		sourceDirs: cfg.SourceDirs,
		extensions: cfg.Extensions,
	}
}

// SourceDirs returns the directories this walker visits, in order.
func (w *Walker) SourceDirs() []string {
	return w.sourceDirs
}

// Matches reports whether a file name ends in one of the configured extensions.
func (w *Walker) Matches(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Walk visits every matching file under every source directory. The first
// error from visit (or from traversal itself) stops the walk and is returned.
func (w *Walker) Walk(visit Visitor) error {
	for _, dir := range w.sourceDirs {
		info, err := os.Stat(dir)
		if err != nil {
			return &MissingSourceDirError{Path: dir, Wrapped: err}
		}
		if !info.IsDir() {
			return &NotADirectoryError{Path: dir}
		}

		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, wErr error) error {
			if wErr != nil {
				return wErr
			}
			if d.IsDir() {
				if path != dir && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.Matches(d.Name()) {
				return nil
			}
			return visit(path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// skipDir reports whether a subdirectory is excluded from traversal.
// Hidden directories cover VCS metadata (.git, .svn, .hg) and editor state.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".")
}
