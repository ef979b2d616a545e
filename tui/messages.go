package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/snapfetch/fetcher"
	"github.com/lukemcguire/snapfetch/snapshot"
)

// FetchProgressMsg reports progress for a single settled target.
type FetchProgressMsg struct {
	Fetched int
	Total   int
	URL     string
	Err     string
}

// FetchDoneMsg signals the fetch run has completed.
type FetchDoneMsg struct {
	Result *snapshot.RunResult
	Err    error
}

// waitForProgress returns a tea.Cmd that reads one event from the progress
// channel. When the channel closes, it returns a FetchDoneMsg with nil Result
// (the actual result comes from startRun).
func waitForProgress(ch <-chan fetcher.FetchEvent) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return FetchDoneMsg{}
		}
		return FetchProgressMsg{
			Fetched: evt.Fetched,
			Total:   evt.Total,
			URL:     evt.URL,
			Err:     evt.Err,
		}
	}
}
