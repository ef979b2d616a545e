// Package main provides the snapfetch CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/snapfetch/fetcher"
	"github.com/lukemcguire/snapfetch/tui"
)

// targets is the fixed fetch list, set at build time and injected through
// fetcher.Config.
var targets = []string{
	"https://httpbin.org/get",
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := fetcher.DefaultConfig(targets)

	progressCh := make(chan fetcher.FetchEvent, 100)
	fetcherInstance := fetcher.New(cfg, progressCh)

	tuiModel := tui.NewModel(ctx, cancel, fetcherInstance, progressCh)
	program := tea.NewProgram(tuiModel)

	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	finalTUIModel := finalModel.(tui.Model)
	if finalTUIModel.Failed() {
		os.Exit(1)
	}
}
