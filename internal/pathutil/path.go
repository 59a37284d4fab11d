// Package pathutil provides path normalization and glob matching for
// per-file configuration.
package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath normalizes a single path relative to a parent directory.
// Values that look like paths (".", or containing a separator) are made
// absolute; bare filenames are left as patterns. Trailing separators are
// stripped either way.
func NormalizePath(path, parent string) string {
	if path == "." || strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		if abs, err := filepath.Abs(filepath.Join(parent, path)); err == nil {
			path = abs
		}
	}
	return strings.TrimRight(path, string(filepath.Separator)+"/")
}

// NormalizePaths normalizes each path relative to the parent directory.
func NormalizePaths(paths []string, parent string) []string {
	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = NormalizePath(p, parent)
	}
	return normalized
}

// MatchAny reports whether any pattern matches the filename. An empty
// pattern list matches everything, so inclusion filters default to open.
// Malformed patterns never match.
func MatchAny(filename string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, filename); err == nil && ok {
			return true
		}
	}
	return false
}

// MatchesFilename reports whether a path is covered by the patterns,
// trying the basename first and the absolute path second. An empty pattern
// list covers nothing, so exclusion filters default to closed.
func MatchesFilename(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	basename := filepath.Base(path)
	if basename != "." && basename != ".." && MatchAny(basename, patterns) {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return MatchAny(abs, patterns)
}
