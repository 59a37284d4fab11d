package config_test

import (
	"testing"

	"github.com/lintscope/lintscope/internal/config"
)

func TestMergePrioritizesLaterConfigs(t *testing.T) {
	base := config.Config{
		Output: config.OutputConfig{Directory: "default"},
	}
	file := config.Config{
		Output: config.OutputConfig{Directory: "file"},
	}
	final := config.Config{
		Output: config.OutputConfig{Directory: "env"},
	}

	merged := config.Merge(base, file, final)

	if merged.Output.Directory != "env" {
		t.Fatalf("expected env directory to win, got %s", merged.Output.Directory)
	}
}

func TestMergeKeepsBaseWhenOverlayEmpty(t *testing.T) {
	base := config.Config{
		PerFileIgnores: "a.py: E501",
		Exclude:        []string{"*.gen.go"},
		Git:            config.GitConfig{BaseRef: "main"},
	}

	merged := config.Merge(base, config.Config{})

	if merged.PerFileIgnores != "a.py: E501" {
		t.Errorf("expected perFileIgnores preserved, got %q", merged.PerFileIgnores)
	}
	if len(merged.Exclude) != 1 {
		t.Errorf("expected exclude preserved, got %v", merged.Exclude)
	}
	if merged.Git.BaseRef != "main" {
		t.Errorf("expected baseRef preserved, got %q", merged.Git.BaseRef)
	}
}

func TestMergeOverlaysGitFieldsIndependently(t *testing.T) {
	base := config.Config{
		Git: config.GitConfig{RepositoryDir: "/repo", BaseRef: "main"},
	}
	overlay := config.Config{
		Git: config.GitConfig{BaseRef: "develop"},
	}

	merged := config.Merge(base, overlay)

	if merged.Git.RepositoryDir != "/repo" {
		t.Errorf("expected repositoryDir preserved, got %q", merged.Git.RepositoryDir)
	}
	if merged.Git.BaseRef != "develop" {
		t.Errorf("expected baseRef overridden, got %q", merged.Git.BaseRef)
	}
}

func TestMergeStoreOverlay(t *testing.T) {
	base := config.Config{
		Store: config.StoreConfig{Enabled: true, Path: "/base.db"},
	}
	overlay := config.Config{
		Store: config.StoreConfig{Enabled: true, Path: "/overlay.db"},
	}

	merged := config.Merge(base, overlay)

	if merged.Store.Path != "/overlay.db" {
		t.Fatalf("expected overlay store to win, got %q", merged.Store.Path)
	}
}
