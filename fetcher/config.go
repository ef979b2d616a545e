package fetcher

import "time"

// PreviewLimit is the maximum number of characters retained from a response body.
const PreviewLimit = 2000

// Config holds fetch run configuration.
type Config struct {
	Targets        []string      // URLs to fetch; written paths come back in this order
	OutputDir      string        // Directory for result files (default "output")
	RequestTimeout time.Duration // Per-request timeout (default 15s)
	UserAgent      string        // User-Agent header value (default "AutonomousBot/1.0")
	Concurrency    int           // Max in-flight fetches; 0 means one per target
}

// DefaultConfig returns a Config with sensible defaults for the given targets.
func DefaultConfig(targets []string) Config {
	return Config{
		Targets:        targets,
		OutputDir:      "output",
		RequestTimeout: 15 * time.Second,
		UserAgent:      "AutonomousBot/1.0",
	}
}
