package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lintscope/lintscope/internal/domain"
)

// ReadFindings loads a findings file (a JSON array of findings).
func ReadFindings(path string) ([]domain.Finding, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open findings file: %w", err)
	}
	defer file.Close()

	findings, err := DecodeFindings(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return findings, nil
}

// DecodeFindings decodes a JSON array of findings from r.
func DecodeFindings(r io.Reader) ([]domain.Finding, error) {
	var findings []domain.Finding
	if err := json.NewDecoder(r).Decode(&findings); err != nil {
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	return findings, nil
}
