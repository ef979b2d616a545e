package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists snapshots as timestamped JSON files inside a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. Call EnsureDir before the first Write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// EnsureDir creates the output directory, including missing parents.
// It is idempotent: an existing directory is not an error.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", s.dir, err)
	}
	return nil
}

// Write serializes snap as indented JSON to result_<unix_seconds>.json and
// returns the written path. Non-ASCII characters are preserved unescaped.
// Two writes within the same second target the same filename and the later
// one wins; collisions are not detected.
func (s *Store) Write(snap Snapshot) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("result_%d.json", time.Now().Unix()))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("encode snapshot for %s: %w", snap.URL, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
