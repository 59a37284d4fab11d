// Package cli wires the lintscope commands onto cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lintscope/lintscope/internal/adapter/observability"
	jsonout "github.com/lintscope/lintscope/internal/adapter/output/json"
	"github.com/lintscope/lintscope/internal/adapter/output/markdown"
	"github.com/lintscope/lintscope/internal/diff"
	"github.com/lintscope/lintscope/internal/domain"
	"github.com/lintscope/lintscope/internal/input"
	"github.com/lintscope/lintscope/internal/mapping"
	"github.com/lintscope/lintscope/internal/store"
	"github.com/lintscope/lintscope/internal/textutil"
	"github.com/lintscope/lintscope/internal/usecase/scope"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// DiffSource provides unified diff text from a repository when no diff is
// piped in.
type DiffSource interface {
	DiffText(ctx context.Context, baseRef, targetRef string) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
}

// Arguments encapsulates IO streams injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer

	// Stdin overrides process stdin (tests). When nil the process stdin is
	// read once and memoized.
	Stdin io.Reader

	// StdinIsTerminal overrides TTY detection (tests).
	StdinIsTerminal func() bool
}

// Defaults holds configuration-derived default values for flags.
type Defaults struct {
	Select         []string
	Ignore         []string
	PerFileIgnores string
	Exclude        []string
	Output         string
	BaseRef        string
	Repository     string
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Diff     DiffSource
	Store    store.Store // nil when the baseline store is disabled
	Logger   observability.Logger
	Args     Arguments
	Defaults Defaults
	Version  string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "lintscope",
		Short: "Scope linter findings to files, codes, and changed lines",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(changedCommand(deps))
	root.AddCommand(codesCommand(deps))
	root.AddCommand(filterCommand(deps))
	root.AddCommand(baselineCommand(deps))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func changedCommand(deps Dependencies) *cobra.Command {
	var diffFile string
	var baseRef string
	var targetRef string

	cmd := &cobra.Command{
		Use:   "changed",
		Short: "Print the changed line numbers found in a unified diff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := resolveChangedLines(cmd.Context(), deps, diffFile, baseRef, targetRef)
			if err != nil {
				return err
			}
			return printChanged(cmd.OutOrStdout(), changed)
		},
	}

	cmd.Flags().StringVar(&diffFile, "diff", "", "Unified diff file to read ('-' for stdin; default: stdin when piped)")
	cmd.Flags().StringVar(&baseRef, "base", deps.Defaults.BaseRef, "Base reference to diff against when reading from git")
	cmd.Flags().StringVar(&targetRef, "target", "", "Target reference when reading from git (default: current branch)")

	return cmd
}

func codesCommand(deps Dependencies) *cobra.Command {
	var perFileIgnores string

	cmd := &cobra.Command{
		Use:   "codes [paths...]",
		Short: "Resolve the ignored codes for the given paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := mapping.Parse(perFileIgnores)
			if err != nil {
				return err
			}
			paths, err := expandStdinPaths(deps, args)
			if err != nil {
				return err
			}
			resolver := scope.NewResolver(entries)
			for _, path := range paths {
				codes := resolver.IgnoredCodes(path)
				if len(codes) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: -\n", path)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, strings.Join(codes, ","))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&perFileIgnores, "per-file-ignores", deps.Defaults.PerFileIgnores, "Mapping from file patterns to ignored codes")

	return cmd
}

func filterCommand(deps Dependencies) *cobra.Command {
	var findingsFile string
	var selectCodes string
	var ignoreCodes string
	var perFileIgnores string
	var exclude []string
	var changedOnly bool
	var diffFile string
	var baseRef string
	var targetRef string
	var useBaseline bool
	var outputDir string
	var format string
	var repository string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a findings file down to reportable findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			findings, err := readFindings(deps, findingsFile)
			if err != nil {
				return err
			}

			entries, err := mapping.Parse(perFileIgnores)
			if err != nil {
				return err
			}

			opts := scope.Options{
				Exclude: exclude,
				Select:  textutil.ParseCommaSeparatedList(selectCodes),
				Ignore:  textutil.ParseCommaSeparatedList(ignoreCodes),
			}
			if changedOnly {
				changed, err := resolveChangedLines(ctx, deps, diffFile, baseRef, targetRef)
				if err != nil {
					return err
				}
				opts.Changed = changed
			}
			if useBaseline {
				if deps.Store == nil {
					return fmt.Errorf("--baseline requires the baseline store; enable store in configuration")
				}
				baseline, err := deps.Store.BaselineFingerprints(ctx)
				if err != nil {
					return fmt.Errorf("load baseline: %w", err)
				}
				opts.Baseline = baseline
			}

			service := scope.NewService(scope.NewResolver(entries), deps.Logger)
			kept, stats := service.Apply(ctx, findings, opts)

			if format != "json" && format != "markdown" {
				return fmt.Errorf("unknown format %q (expected json or markdown)", format)
			}

			if outputDir == "" {
				if format == "markdown" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), markdown.BuildReport(kept, stats))
					return err
				}
				return jsonout.Encode(cmd.OutOrStdout(), kept)
			}

			now := func() string { return time.Now().UTC().Format("20060102T150405Z") }
			var path string
			if format == "markdown" {
				path, err = markdown.NewWriter(now).Write(ctx, markdown.Artifact{
					OutputDir:  outputDir,
					Repository: repository,
					Findings:   kept,
					Stats:      stats,
				})
			} else {
				path, err = jsonout.NewWriter(now).Write(ctx, jsonout.Artifact{
					OutputDir:  outputDir,
					Repository: repository,
					Findings:   kept,
				})
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&findingsFile, "findings", "", "Findings file to filter ('-' for stdin)")
	_ = cmd.MarkFlagRequired("findings")
	cmd.Flags().StringVar(&selectCodes, "select", strings.Join(deps.Defaults.Select, ","), "Comma-separated code prefixes to keep (empty keeps all)")
	cmd.Flags().StringVar(&ignoreCodes, "ignore", strings.Join(deps.Defaults.Ignore, ","), "Comma-separated code prefixes to drop")
	cmd.Flags().StringVar(&perFileIgnores, "per-file-ignores", deps.Defaults.PerFileIgnores, "Mapping from file patterns to ignored codes")
	cmd.Flags().StringSliceVar(&exclude, "exclude", deps.Defaults.Exclude, "Glob patterns for files never reported")
	cmd.Flags().BoolVar(&changedOnly, "changed-only", false, "Keep only findings on lines changed in the diff")
	cmd.Flags().StringVar(&diffFile, "diff", "", "Unified diff file to read ('-' for stdin; default: stdin when piped)")
	cmd.Flags().StringVar(&baseRef, "base", deps.Defaults.BaseRef, "Base reference to diff against when reading from git")
	cmd.Flags().StringVar(&targetRef, "target", "", "Target reference when reading from git (default: current branch)")
	cmd.Flags().BoolVar(&useBaseline, "baseline", false, "Drop findings already recorded in the baseline store")
	cmd.Flags().StringVar(&outputDir, "output", deps.Defaults.Output, "Directory to write the artifact to (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or markdown")
	cmd.Flags().StringVar(&repository, "repository", deps.Defaults.Repository, "Repository name used in artifact file names")

	return cmd
}

func baselineCommand(deps Dependencies) *cobra.Command {
	baseline := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the accepted-findings baseline",
	}

	var findingsFile string
	var baseRef string

	update := &cobra.Command{
		Use:   "update",
		Short: "Record the findings file into the baseline store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Store == nil {
				return fmt.Errorf("baseline store is disabled; enable store in configuration")
			}

			findings, err := readFindings(deps, findingsFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			run := store.Run{
				RunID:      fmt.Sprintf("baseline-%s", time.Now().UTC().Format("20060102T150405Z")),
				Timestamp:  time.Now().UTC(),
				Repository: deps.Defaults.Repository,
				BaseRef:    baseRef,
			}
			if err := deps.Store.CreateRun(ctx, run); err != nil {
				return err
			}

			records := make([]store.FindingRecord, 0, len(findings))
			for _, f := range findings {
				records = append(records, store.FindingRecord{
					Fingerprint: f.Fingerprint(),
					Path:        f.Path,
					Line:        f.Line,
					Code:        f.Code,
					Message:     f.Message,
				})
			}
			if err := deps.Store.SaveFindings(ctx, run.RunID, records); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d findings in %s\n", len(records), run.RunID)
			return nil
		},
	}

	update.Flags().StringVar(&findingsFile, "findings", "", "Findings file to record ('-' for stdin)")
	_ = update.MarkFlagRequired("findings")
	update.Flags().StringVar(&baseRef, "base", deps.Defaults.BaseRef, "Base reference the findings were produced against")

	var limit int

	runs := &cobra.Command{
		Use:   "runs",
		Short: "List recent baseline updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Store == nil {
				return fmt.Errorf("baseline store is disabled; enable store in configuration")
			}
			recorded, err := deps.Store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, run := range recorded {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					run.RunID, run.Timestamp.Format(time.RFC3339), run.Repository, run.BaseRef)
			}
			return nil
		},
	}
	runs.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	baseline.AddCommand(update)
	baseline.AddCommand(runs)
	return baseline
}

// resolveChangedLines obtains diff text from (in priority order) an explicit
// file, piped stdin, or the git repository, and parses the changed ranges.
func resolveChangedLines(ctx context.Context, deps Dependencies, diffFile, baseRef, targetRef string) (map[string]diff.LineSet, error) {
	diffText, err := resolveDiffText(ctx, deps, diffFile, baseRef, targetRef)
	if err != nil {
		return nil, err
	}
	return diff.ChangedLines(diffText)
}

func resolveDiffText(ctx context.Context, deps Dependencies, diffFile, baseRef, targetRef string) (string, error) {
	switch {
	case diffFile == "-":
		return readStdin(deps)
	case diffFile != "":
		data, err := os.ReadFile(diffFile)
		if err != nil {
			return "", fmt.Errorf("read diff file: %w", err)
		}
		return string(data), nil
	case !isTerminal(deps):
		return readStdin(deps)
	case deps.Diff != nil:
		if targetRef == "" {
			resolved, err := deps.Diff.CurrentBranch(ctx)
			if err != nil {
				return "", fmt.Errorf("detect target branch: %w", err)
			}
			targetRef = resolved
		}
		return deps.Diff.DiffText(ctx, baseRef, targetRef)
	default:
		return "", fmt.Errorf("no diff available: pipe one on stdin or pass --diff")
	}
}

func readStdin(deps Dependencies) (string, error) {
	if isTerminal(deps) {
		return "", fmt.Errorf("expected a unified diff on stdin, but stdin is a terminal")
	}
	if deps.Args.Stdin != nil {
		return input.Decode(deps.Args.Stdin)
	}
	return input.ReadStdin()
}

func isTerminal(deps Dependencies) bool {
	if deps.Args.StdinIsTerminal != nil {
		return deps.Args.StdinIsTerminal()
	}
	if deps.Args.Stdin != nil {
		return false
	}
	return stdinIsTerminal()
}

// expandStdinPaths replaces a "-" path argument with the paths piped on
// stdin (separated by whitespace, commas, or newlines).
func expandStdinPaths(deps Dependencies, args []string) ([]string, error) {
	if !input.IsUsingStdin(args) {
		return args, nil
	}
	text, err := readStdin(deps)
	if err != nil {
		return nil, err
	}
	piped := textutil.ParseCommaSeparatedList(text)

	expanded := make([]string, 0, len(args)+len(piped))
	for _, arg := range args {
		if arg == "-" {
			expanded = append(expanded, piped...)
			continue
		}
		expanded = append(expanded, arg)
	}
	return expanded, nil
}

// readFindings loads a findings file, accepting "-" for stdin.
func readFindings(deps Dependencies, path string) ([]domain.Finding, error) {
	if path == "-" {
		text, err := readStdin(deps)
		if err != nil {
			return nil, err
		}
		return jsonout.DecodeFindings(strings.NewReader(text))
	}
	return jsonout.ReadFindings(path)
}

// printChanged writes the changed lines as "path: l1,l2,..." with paths
// sorted for stable output.
func printChanged(w io.Writer, changed map[string]diff.LineSet) error {
	paths := make([]string, 0, len(changed))
	for path := range changed {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		lines := changed[path].Lines()
		parts := make([]string, len(lines))
		for i, n := range lines {
			parts[i] = fmt.Sprintf("%d", n)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", path, strings.Join(parts, ",")); err != nil {
			return err
		}
	}
	return nil
}
