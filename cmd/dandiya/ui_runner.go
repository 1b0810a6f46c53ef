package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"dandiya/internal/buildpipeline"
	"dandiya/internal/driver"
	"dandiya/internal/ui"
)

// errInterrupted is returned when the progress view is closed before
// generation finished.
var errInterrupted = errors.New("generation interrupted")

type genOutcome struct {
	result *driver.GenerateResult
	err    error
}

type (
	generateFunc func(context.Context, driver.GenerateRequest) (*driver.GenerateResult, error)
	viewFunc     func(tea.Model) (tea.Model, error)
)

// runGenWithUI runs GenerateDir in the background and renders its events
// until the channel is closed.
func runGenWithUI(ctx context.Context, title string, files []string, req driver.GenerateRequest) (*driver.GenerateResult, error) {
	return runGenWithView(ctx, title, files, req, driver.GenerateDir, runProgram)
}

func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithOutput(os.Stdout)).Run()
}

// runGenWithView cancels generation as soon as the view returns, so
// quitting the view early stops the remaining work.
func runGenWithView(parent context.Context, title string, files []string, req driver.GenerateRequest, generate generateFunc, view viewFunc) (*driver.GenerateResult, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan genOutcome, 1)

	go func() {
		req.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := generate(ctx, req)
		outcomeCh <- genOutcome{result: res, err: err}
		close(events)
	}()

	_, uiErr := view(ui.NewProgressModel(title, files, events))
	cancel()
	// the view may quit before the last event; keep the channel flowing
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	if errors.Is(outcome.err, context.Canceled) && parent.Err() == nil {
		return outcome.result, errInterrupted
	}
	return outcome.result, outcome.err
}
