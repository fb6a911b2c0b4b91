package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"svast/internal/driver"
	"svast/internal/source"
	"svast/internal/ui"
)

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

func runParseWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, runOpts)
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// keep the producer unblocked if the view quit early
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
