// Package json reads findings from and writes findings to JSON.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lintscope/lintscope/internal/domain"
)

// Artifact describes a findings file to be written.
type Artifact struct {
	OutputDir  string
	Repository string
	Findings   []domain.Finding
}

// Writer persists findings artifacts to disk.
type Writer struct {
	now func() string
}

// NewWriter creates a new JSON writer with a timestamp supplier.
func NewWriter(now func() string) *Writer {
	return &Writer{now: now}
}

// Write persists findings to disk as a JSON file and returns its path.
func (w *Writer) Write(ctx context.Context, artifact Artifact) (string, error) {
	if err := os.MkdirAll(artifact.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	filePath := filepath.Join(artifact.OutputDir, fmt.Sprintf("findings_%s_%s.json", artifact.Repository, w.now()))

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create json file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, artifact.Findings); err != nil {
		return "", err
	}
	return filePath, nil
}

// Encode writes findings to w as indented JSON. A nil slice encodes as an
// empty array so consumers always see a list.
func Encode(w io.Writer, findings []domain.Finding) error {
	if findings == nil {
		findings = []domain.Finding{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(findings); err != nil {
		return fmt.Errorf("encode findings to json: %w", err)
	}
	return nil
}
