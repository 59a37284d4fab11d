// Package domain holds the core types shared across the tool.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Finding is a single linter result tied to a position in a file.
type Finding struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Column  int    `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fingerprint returns a stable identity for baseline comparisons. The line
// number is deliberately excluded so findings stay suppressed when unrelated
// edits shift code within a file.
func (f Finding) Fingerprint() string {
	payload := fmt.Sprintf("%s|%s|%s", f.Path, f.Code, f.Message)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:16])
}
