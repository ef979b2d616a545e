// Package fetcher implements a one-shot concurrent batch fetch: one GET per
// configured target, each response persisted as a timestamped snapshot file.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lukemcguire/snapfetch/snapshot"
)

// Fetcher fans a single GET out over a fixed target list and writes one
// snapshot file per target.
type Fetcher struct {
	cfg        Config
	client     *http.Client
	store      *snapshot.Store
	mu         sync.Mutex
	fetched    int
	progressCh chan<- FetchEvent
}

// New creates a Fetcher with the given configuration.
// The progressCh parameter is optional; pass nil to disable progress events.
func New(cfg Config, progressCh chan<- FetchEvent) *Fetcher {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "AutonomousBot/1.0"
	}

	return &Fetcher{
		cfg:        cfg,
		client:     &http.Client{},
		store:      snapshot.NewStore(cfg.OutputDir),
		progressCh: progressCh,
	}
}

// Run fetches every configured target concurrently and returns the written
// files in target order. Any single failure fails the whole run, but the join
// waits for every in-flight target to settle first; files already written
// stay on disk. An empty target list succeeds with zero files.
func (f *Fetcher) Run(ctx context.Context) (*snapshot.RunResult, error) {
	start := time.Now()

	if err := f.store.EnsureDir(); err != nil {
		return nil, fmt.Errorf("ensure output directory: %w", err)
	}

	files := make([]snapshot.File, len(f.cfg.Targets))

	// Plain Group rather than WithContext: a failed target must not cancel
	// its siblings, only fail the aggregate result.
	var group errgroup.Group
	if f.cfg.Concurrency > 0 {
		group.SetLimit(f.cfg.Concurrency)
	}

	for i, target := range f.cfg.Targets {
		group.Go(func() error {
			path, err := f.fetchOne(ctx, target)
			if err == nil {
				files[i] = snapshot.File{URL: target, Path: path}
			}
			f.report(target, path, err)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run targets: %w", err)
	}

	return &snapshot.RunResult{
		Files: files,
		Stats: snapshot.RunStats{
			Targets:  len(f.cfg.Targets),
			Written:  len(files),
			Duration: time.Since(start),
		},
	}, nil
}

// fetchOne fetches a single target and writes its snapshot file.
func (f *Fetcher) fetchOne(ctx context.Context, target string) (string, error) {
	preview, err := FetchPreview(ctx, f.client, target, f.cfg)
	if err != nil {
		return "", err
	}

	path, err := f.store.Write(snapshot.Snapshot{URL: target, Preview: preview})
	if err != nil {
		return "", fmt.Errorf("write snapshot for %s: %w", target, err)
	}
	return path, nil
}

// report emits one progress event for a settled target.
func (f *Fetcher) report(target, path string, err error) {
	if f.progressCh == nil {
		return
	}

	f.mu.Lock()
	f.fetched++
	evt := FetchEvent{
		URL:     target,
		Path:    path,
		Fetched: f.fetched,
		Total:   len(f.cfg.Targets),
	}
	f.mu.Unlock()

	if err != nil {
		evt.Err = err.Error()
	}
	f.progressCh <- evt
}
