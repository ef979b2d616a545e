// Package snapshot defines the persisted fetch record and its on-disk store.
package snapshot

import "time"

// Snapshot is the persisted record for a single fetched target.
// The two-field shape (url, preview) is the on-disk compatibility contract.
type Snapshot struct {
	URL     string `json:"url"`     // The target that was fetched
	Preview string `json:"preview"` // First ≤2000 characters of the decoded body
}

// File records one written snapshot file and the target it came from.
type File struct {
	URL  string // The source target
	Path string // The written file path
}

// RunStats contains aggregate statistics for a fetch run.
type RunStats struct {
	Targets  int           // Number of configured targets
	Written  int           // Number of snapshot files written
	Duration time.Duration // Total time taken for the run
}

// RunResult represents the complete output of a fetch run.
type RunResult struct {
	Files []File   // Written files, in target order
	Stats RunStats // Aggregate statistics
}

// Paths returns the written file paths in target order.
func (r *RunResult) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}
