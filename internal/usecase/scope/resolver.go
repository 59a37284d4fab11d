// Package scope decides which findings survive for a given file set: it
// resolves per-file ignored codes and filters findings down to changed lines
// and non-baselined results.
package scope

import (
	"strings"

	"github.com/lintscope/lintscope/internal/mapping"
	"github.com/lintscope/lintscope/internal/pathutil"
)

// Resolver maps file paths to the lint codes ignored for them.
type Resolver struct {
	entries []mapping.Entry
}

// NewResolver builds a resolver from parsed mapping entries.
func NewResolver(entries []mapping.Entry) *Resolver {
	return &Resolver{entries: entries}
}

// IgnoredCodes returns the codes ignored for the given path, in declaration
// order. Every entry whose pattern matches contributes its codes; duplicates
// are preserved.
func (r *Resolver) IgnoredCodes(path string) []string {
	var codes []string
	for _, entry := range r.entries {
		if pathutil.MatchesFilename(path, []string{entry.Pattern}) {
			codes = append(codes, entry.Codes...)
		}
	}
	return codes
}

// Ignores reports whether the given code is suppressed for the path. Codes
// match by prefix, so ignoring E5 covers E501 and E502.
func (r *Resolver) Ignores(path, code string) bool {
	for _, ignored := range r.IgnoredCodes(path) {
		if strings.HasPrefix(code, ignored) {
			return true
		}
	}
	return false
}
