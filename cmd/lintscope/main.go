package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lintscope/lintscope/internal/adapter/cli"
	"github.com/lintscope/lintscope/internal/adapter/git"
	"github.com/lintscope/lintscope/internal/adapter/observability"
	"github.com/lintscope/lintscope/internal/adapter/store/sqlite"
	"github.com/lintscope/lintscope/internal/config"
	"github.com/lintscope/lintscope/internal/pathutil"
	"github.com/lintscope/lintscope/internal/store"
	"github.com/lintscope/lintscope/internal/textutil"
	"github.com/lintscope/lintscope/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Cancellable context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "lintscope",
		EnvPrefix:   "LINTSCOPE",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	repoDir := cfg.Git.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}

	gitEngine := git.NewEngine(repoDir)

	var logger observability.Logger
	if cfg.Observability.Logging.Enabled {
		logger = observability.NewDefaultLogger(
			observability.ParseLevel(cfg.Observability.Logging.Level),
			observability.ParseFormat(cfg.Observability.Logging.Format),
		)
	}

	// Initialize the baseline store if enabled. A store failure downgrades
	// to a warning: filtering still works without baseline support.
	var baselineStore store.Store
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create store directory: %v", err)
		} else {
			sqliteStore, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize store: %v", err)
			} else {
				baselineStore = sqliteStore
				defer baselineStore.Close()
			}
		}
	}

	root := cli.NewRootCommand(cli.Dependencies{
		Diff:   gitEngine,
		Store:  baselineStore,
		Logger: logger,
		Defaults: cli.Defaults{
			Select:         cfg.Select,
			Ignore:         cfg.Ignore,
			PerFileIgnores: cfg.PerFileIgnores,
			Exclude:        pathutil.NormalizePaths(cfg.Exclude, repoDir),
			Output:         cfg.Output.Directory,
			BaseRef:        cfg.Git.BaseRef,
			Repository:     repositoryName(repoDir),
		},
		Version: version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// repositoryName derives a slug for artifact file names from the repository
// directory.
func repositoryName(repoDir string) string {
	abs, err := filepath.Abs(repoDir)
	if err != nil {
		return "unknown"
	}
	return textutil.NormalizePackageName(filepath.Base(abs))
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lintscope"))
	}
	return paths
}

// Compile-time interface compliance checks
var _ cli.DiffSource = (*git.Engine)(nil)
var _ store.Store = (*sqlite.Store)(nil)
var _ observability.Logger = (*observability.DefaultLogger)(nil)
