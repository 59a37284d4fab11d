// Package store defines the persistence interface for the findings baseline.
package store

import (
	"context"
	"time"
)

// Store persists baseline runs and the finding fingerprints they accepted.
type Store interface {
	// CreateRun records a baseline update.
	CreateRun(ctx context.Context, run Run) error

	// SaveFindings records findings under a run. Fingerprints already in the
	// baseline are kept, not duplicated.
	SaveFindings(ctx context.Context, runID string, findings []FindingRecord) error

	// BaselineFingerprints returns every fingerprint ever accepted.
	BaselineFingerprints(ctx context.Context) (map[string]struct{}, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	Close() error
}

// Run represents a single baseline update.
type Run struct {
	RunID      string
	Timestamp  time.Time
	Repository string
	BaseRef    string
}

// FindingRecord is a persisted finding identity.
type FindingRecord struct {
	Fingerprint string
	Path        string
	Line        int
	Code        string
	Message     string
}
