// Package tui provides the Bubble Tea terminal UI for snapfetch,
// displaying live fetch progress and a styled summary of written files.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lukemcguire/snapfetch/fetcher"
	"github.com/lukemcguire/snapfetch/snapshot"
)

// Model is the Bubble Tea model for the fetch TUI.
type Model struct {
	ctx             context.Context
	cancel          context.CancelFunc
	fetcherInstance *fetcher.Fetcher
	spinner         spinner.Model
	progressCh      <-chan fetcher.FetchEvent

	fetched  int
	total    int
	current  string
	quitting bool
	done     bool
	result   *snapshot.RunResult
	err      error
	width    int
}

// NewModel creates a TUI model wired to the given fetcher and progress channel.
func NewModel(ctx context.Context, cancel context.CancelFunc, fetcherInst *fetcher.Fetcher, progressCh <-chan fetcher.FetchEvent) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:             ctx,
		cancel:          cancel,
		fetcherInstance: fetcherInst,
		spinner:         spin,
		progressCh:      progressCh,
	}
}

// Init starts the spinner, fetch run, and progress listener concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startRun(), waitForProgress(m.progressCh))
}

// startRun returns a tea.Cmd that executes the fetch run and sends FetchDoneMsg.
func (m Model) startRun() tea.Cmd {
	return func() tea.Msg {
		res, err := m.fetcherInstance.Run(m.ctx)
		if err != nil {
			err = fmt.Errorf("fetch run: %w", err)
		}
		return FetchDoneMsg{Result: res, Err: err}
	}
}

// Update handles messages from the Bubble Tea runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case FetchProgressMsg:
		m.fetched = msg.Fetched
		m.total = msg.Total
		m.current = msg.URL
		return m, waitForProgress(m.progressCh)

	case FetchDoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current TUI state.
func (m Model) View() string {
	if m.done && m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.done && m.result != nil {
		return RenderSummary(m.result)
	}
	return fmt.Sprintf("%s Fetching... %d/%d done\n%s\n",
		m.spinner.View(), m.fetched, m.total,
		dimStyle.Render("  "+m.current))
}

// Failed reports whether the fetch run ended in error.
func (m Model) Failed() bool {
	return m.err != nil
}

// GetResult returns the run result for output formatting.
func (m Model) GetResult() *snapshot.RunResult {
	return m.result
}
