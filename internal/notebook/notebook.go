// Package notebook extracts notebook paths from kernel-start requests and
// canonicalizes them. Canonicalization is what makes "same file, different
// spelling" resolve to the same kernel identity, so it must behave
// identically on every call.
package notebook

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment hints consulted when a request carries no explicit path.
const (
	EnvSessionName  = "JPY_SESSION_NAME"
	EnvNotebookPath = "NOTEBOOK_PATH"
)

// PathFromRequest picks the notebook path out of a start request's
// parameters. Precedence: explicit path, then the session-name hint, then the
// notebook-path hint. Empty when none is present, in which case no
// path-based reuse is possible.
func PathFromRequest(path string, env map[string]string) string {
	if path != "" {
		return path
	}
	if env == nil {
		return ""
	}
	if p := env[EnvSessionName]; p != "" {
		return p
	}
	return env[EnvNotebookPath]
}

// Normalize converts raw into a canonical absolute path: relative paths
// resolve against rootDir (the process working directory when rootDir is
// empty), symlinks and dot segments are resolved, and on case-insensitive
// platforms the path is case-folded so spellings differing only by case
// collapse. Empty input yields "".
func Normalize(rootDir, raw string) string {
	if raw == "" {
		return ""
	}
	p := raw
	if !filepath.IsAbs(p) {
		base := rootDir
		if base == "" {
			if wd, err := os.Getwd(); err == nil {
				base = wd
			}
		}
		p = filepath.Join(base, p)
	}
	p = resolveSymlinks(filepath.Clean(p))
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if caseInsensitiveFS {
		p = strings.ToLower(p)
	}
	return filepath.Clean(p)
}

// Windows and the default macOS volume formats are case-insensitive.
var caseInsensitiveFS = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// resolveSymlinks resolves as much of p as exists on disk. Notebook files are
// often not yet saved when their kernel starts, so a missing suffix is kept
// verbatim under the deepest resolvable ancestor.
func resolveSymlinks(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		return r
	}
	dir := filepath.Dir(p)
	if dir == p {
		return p
	}
	return filepath.Join(resolveSymlinks(dir), filepath.Base(p))
}
