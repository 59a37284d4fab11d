// Package markdown renders filtered findings into a human-readable report.
package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lintscope/lintscope/internal/domain"
	"github.com/lintscope/lintscope/internal/usecase/scope"
)

type clock func() string

// Artifact describes a Markdown report to be written.
type Artifact struct {
	OutputDir  string
	Repository string
	Findings   []domain.Finding
	Stats      scope.Stats
}

// Writer renders findings into Markdown files.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a Markdown report to disk and returns its path.
func (w *Writer) Write(ctx context.Context, artifact Artifact) (string, error) {
	if err := os.MkdirAll(artifact.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(artifact.OutputDir, fmt.Sprintf("report_%s_%s.md", artifact.Repository, w.now()))
	if err := os.WriteFile(path, []byte(BuildReport(artifact.Findings, artifact.Stats)), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}

// BuildReport renders findings and filter statistics as Markdown.
func BuildReport(findings []domain.Finding, stats scope.Stats) string {
	var builder strings.Builder
	caser := cases.Title(language.English)

	builder.WriteString("# Lint Scope Report\n\n")
	builder.WriteString(fmt.Sprintf("- Findings in: %d\n", stats.Input))
	builder.WriteString(fmt.Sprintf("- Findings kept: %d\n\n", stats.Kept))

	if len(stats.Dropped) > 0 {
		builder.WriteString("## Dropped\n\n")
		reasons := make([]string, 0, len(stats.Dropped))
		for reason := range stats.Dropped {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			builder.WriteString(fmt.Sprintf("- %s: %d\n", caser.String(reason), stats.Dropped[reason]))
		}
		builder.WriteString("\n")
	}

	if len(findings) == 0 {
		builder.WriteString("No findings to report.\n")
		return builder.String()
	}

	builder.WriteString("## Findings\n\n")
	for _, byPath := range groupByPath(findings) {
		builder.WriteString(fmt.Sprintf("### %s\n\n", byPath.path))
		for _, finding := range byPath.findings {
			if finding.Column > 0 {
				builder.WriteString(fmt.Sprintf("- %d:%d %s %s\n", finding.Line, finding.Column, finding.Code, finding.Message))
			} else {
				builder.WriteString(fmt.Sprintf("- %d %s %s\n", finding.Line, finding.Code, finding.Message))
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

type pathGroup struct {
	path     string
	findings []domain.Finding
}

// groupByPath groups findings by path, preserving first-seen path order and
// input order within a path.
func groupByPath(findings []domain.Finding) []pathGroup {
	index := make(map[string]int)
	var groups []pathGroup
	for _, finding := range findings {
		i, ok := index[finding.Path]
		if !ok {
			i = len(groups)
			index[finding.Path] = i
			groups = append(groups, pathGroup{path: finding.Path})
		}
		groups[i].findings = append(groups[i].findings, finding)
	}
	return groups
}
