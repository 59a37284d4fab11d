package scope

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lintscope/lintscope/internal/adapter/observability"
	"github.com/lintscope/lintscope/internal/diff"
	"github.com/lintscope/lintscope/internal/domain"
	"github.com/lintscope/lintscope/internal/pathutil"
)

// Drop reasons reported in Stats.Dropped.
const (
	DropExcluded   = "excluded file"
	DropUnselected = "unselected code"
	DropCode       = "ignored code"
	DropIgnored    = "per-file ignore"
	DropUnchanged  = "unchanged line"
	DropBaseline   = "baseline"
)

// Options control which filters Apply runs. A nil/empty field disables the
// corresponding filter.
type Options struct {
	Exclude  []string                // glob patterns for files never reported
	Select   []string                // code prefixes to keep; empty keeps all
	Ignore   []string                // code prefixes to drop everywhere
	Changed  map[string]diff.LineSet // changed lines per file
	Baseline map[string]struct{}     // accepted finding fingerprints
}

// Stats summarizes one Apply pass.
type Stats struct {
	Input   int
	Kept    int
	Dropped map[string]int
}

// Service applies the configured filters to findings.
type Service struct {
	resolver *Resolver
	logger   observability.Logger
}

// NewService builds a filter service. The logger may be nil.
func NewService(resolver *Resolver, logger observability.Logger) *Service {
	return &Service{resolver: resolver, logger: logger}
}

// Apply runs the exclusion, per-file-ignore, changed-lines, and baseline
// filters in that order, keeping input order among survivors.
func (s *Service) Apply(ctx context.Context, findings []domain.Finding, opts Options) ([]domain.Finding, Stats) {
	stats := Stats{Input: len(findings), Dropped: make(map[string]int)}

	kept := make([]domain.Finding, 0, len(findings))
	for _, finding := range findings {
		if reason := s.drop(finding, opts); reason != "" {
			stats.Dropped[reason]++
			continue
		}
		kept = append(kept, finding)
	}
	stats.Kept = len(kept)

	if s.logger != nil {
		s.logger.LogInfo(ctx, "filtered findings", map[string]interface{}{
			"input": stats.Input,
			"kept":  stats.Kept,
		})
		for reason, count := range stats.Dropped {
			s.logger.LogDebug(ctx, "dropped findings", map[string]interface{}{
				"reason": reason,
				"count":  count,
			})
		}
	}

	return kept, stats
}

// drop returns the reason a finding is filtered out, or "" to keep it.
func (s *Service) drop(finding domain.Finding, opts Options) string {
	if pathutil.MatchesFilename(finding.Path, opts.Exclude) {
		return DropExcluded
	}
	if len(opts.Select) > 0 && !matchesCode(finding.Code, opts.Select) {
		return DropUnselected
	}
	if matchesCode(finding.Code, opts.Ignore) {
		return DropCode
	}
	if s.resolver != nil && s.resolver.Ignores(finding.Path, finding.Code) {
		return DropIgnored
	}
	if opts.Changed != nil {
		lines, ok := opts.Changed[diffKey(finding.Path)]
		if !ok || !lines.Contains(finding.Line) {
			return DropUnchanged
		}
	}
	if opts.Baseline != nil {
		if _, ok := opts.Baseline[finding.Fingerprint()]; ok {
			return DropBaseline
		}
	}
	return ""
}

// matchesCode reports whether the code falls under any of the prefixes, so
// selecting E5 covers E501 and E502.
func matchesCode(code string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// diffKey normalizes a finding path to the repo-relative form diff output
// uses as map keys.
func diffKey(path string) string {
	key := filepath.ToSlash(path)
	for strings.HasPrefix(key, "./") {
		key = key[2:]
	}
	return key
}
