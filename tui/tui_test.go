package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/snapfetch/fetcher"
	"github.com/lukemcguire/snapfetch/snapshot"
)

func newTestFetcher(progressCh chan fetcher.FetchEvent) *fetcher.Fetcher {
	cfg := fetcher.DefaultConfig([]string{"https://example.com"})
	cfg.RequestTimeout = 5 * time.Second
	return fetcher.New(cfg, progressCh)
}

func TestNewModel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	progressCh := make(chan fetcher.FetchEvent, 10)
	f := newTestFetcher(progressCh)

	model := NewModel(ctx, cancel, f, progressCh)

	if model.ctx != ctx {
		t.Error("expected ctx to be stored in model")
	}
	if model.cancel == nil {
		t.Error("expected cancel to be stored in model")
	}
	if model.fetcherInstance != f {
		t.Error("expected fetcher instance to be stored in model")
	}
	if model.progressCh != progressCh {
		t.Error("expected progressCh to be stored in model")
	}
	if model.fetched != 0 || model.total != 0 {
		t.Error("expected initial counters to be zero")
	}
	if model.done {
		t.Error("expected done to be false initially")
	}
}

func TestFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "no error",
			err:  nil,
			want: false,
		},
		{
			name: "run error",
			err:  errors.New("fetch run: boom"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Model{err: tt.err}
			if got := model.Failed(); got != tt.want {
				t.Errorf("Failed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetResult(t *testing.T) {
	tests := []struct {
		name   string
		result *snapshot.RunResult
	}{
		{
			name:   "nil result",
			result: nil,
		},
		{
			name:   "empty result",
			result: &snapshot.RunResult{},
		},
		{
			name: "result with files",
			result: &snapshot.RunResult{
				Files: []snapshot.File{
					{URL: "https://example.com", Path: "output/result_1700000000.json"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Model{result: tt.result}
			if got := model.GetResult(); got != tt.result {
				t.Errorf("GetResult() = %v, want %v", got, tt.result)
			}
		})
	}
}

func TestRenderSummary_NilResult(t *testing.T) {
	output := RenderSummary(nil)
	if output == "" {
		t.Error("expected non-empty output for nil result")
	}
}

func TestRenderSummary_NoFiles(t *testing.T) {
	res := &snapshot.RunResult{
		Stats: snapshot.RunStats{Duration: time.Second},
	}
	output := RenderSummary(res)
	if output == "" {
		t.Error("expected non-empty output")
	}
	// The styled output should contain the core text (ANSI codes may wrap it).
	if !strings.Contains(output, "nothing written") {
		t.Errorf("expected empty-run message, got: %s", output)
	}
}

func TestRenderSummary_WithFiles(t *testing.T) {
	res := &snapshot.RunResult{
		Files: []snapshot.File{
			{URL: "https://example.com/a", Path: "output/result_1700000001.json"},
			{URL: "https://example.com/b", Path: "output/result_1700000002.json"},
		},
		Stats: snapshot.RunStats{
			Targets:  2,
			Written:  2,
			Duration: 3 * time.Second,
		},
	}
	output := RenderSummary(res)
	if !strings.Contains(output, "2 snapshot files") {
		t.Errorf("expected file count in summary, got: %s", output)
	}
	if !strings.Contains(output, "example.com/a") {
		t.Errorf("expected target URL in output, got: %s", output)
	}
	if !strings.Contains(output, "result_1700000002.json") {
		t.Errorf("expected written path in output, got: %s", output)
	}
}

func TestInit_ReturnsBatchCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	progressCh := make(chan fetcher.FetchEvent, 10)
	model := NewModel(ctx, cancel, newTestFetcher(progressCh), progressCh)

	if cmd := model.Init(); cmd == nil {
		t.Error("Init() should return a non-nil batch command")
	}
}

func TestUpdate_FetchProgressMsg(t *testing.T) {
	model := Model{
		progressCh: make(chan fetcher.FetchEvent, 10),
	}

	msg := FetchProgressMsg{Fetched: 2, Total: 3, URL: "https://example.com/page"}
	updatedModel, cmd := model.Update(msg)
	updated := updatedModel.(Model)

	if updated.fetched != 2 {
		t.Errorf("expected fetched=2, got %d", updated.fetched)
	}
	if updated.total != 3 {
		t.Errorf("expected total=3, got %d", updated.total)
	}
	if updated.current != "https://example.com/page" {
		t.Errorf("expected current URL to be set, got %s", updated.current)
	}
	if cmd == nil {
		t.Error("expected non-nil cmd to re-subscribe to progress channel")
	}
}

func TestUpdate_FetchDoneMsg(t *testing.T) {
	model := Model{}
	res := &snapshot.RunResult{
		Files: []snapshot.File{{URL: "https://example.com", Path: "output/result_1700000000.json"}},
		Stats: snapshot.RunStats{Targets: 1, Written: 1},
	}

	updatedModel, cmd := model.Update(FetchDoneMsg{Result: res})
	updated := updatedModel.(Model)

	if !updated.done {
		t.Error("expected done=true after FetchDoneMsg")
	}
	if updated.result != res {
		t.Error("expected result to be stored")
	}
	if cmd == nil {
		t.Error("expected quit command after FetchDoneMsg")
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	cancelled := false
	model := Model{
		cancel: func() { cancelled = true },
	}

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	updated := updatedModel.(Model)

	if !updated.quitting {
		t.Error("expected quitting=true after ctrl+c")
	}
	if !cancelled {
		t.Error("expected context cancel on ctrl+c")
	}
	if cmd == nil {
		t.Error("expected quit command after ctrl+c")
	}
}

func TestView_StatesRender(t *testing.T) {
	doneErr := Model{done: true, err: errors.New("fetch run: boom")}
	if out := doneErr.View(); !strings.Contains(out, "boom") {
		t.Errorf("expected error view to mention the failure, got: %s", out)
	}

	doneOK := Model{
		done: true,
		result: &snapshot.RunResult{
			Files: []snapshot.File{{URL: "https://example.com", Path: "output/result_1700000000.json"}},
			Stats: snapshot.RunStats{Targets: 1, Written: 1},
		},
	}
	if out := doneOK.View(); !strings.Contains(out, "result_1700000000.json") {
		t.Errorf("expected summary view to list written files, got: %s", out)
	}
}

func TestWaitForProgress(t *testing.T) {
	ch := make(chan fetcher.FetchEvent, 1)
	ch <- fetcher.FetchEvent{URL: "https://example.com", Fetched: 1, Total: 2}

	msg := waitForProgress(ch)()
	progress, ok := msg.(FetchProgressMsg)
	if !ok {
		t.Fatalf("expected FetchProgressMsg, got %T", msg)
	}
	if progress.Fetched != 1 || progress.Total != 2 {
		t.Errorf("progress = %+v, want Fetched=1 Total=2", progress)
	}

	close(ch)
	if _, ok := waitForProgress(ch)().(FetchDoneMsg); !ok {
		t.Error("expected FetchDoneMsg from closed channel")
	}
}
