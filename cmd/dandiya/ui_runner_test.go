package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"dandiya/internal/driver"
)

func TestQuittingViewCancelsGeneration(t *testing.T) {
	generate := func(ctx context.Context, _ driver.GenerateRequest) (*driver.GenerateResult, error) {
		select {
		case <-ctx.Done():
			return &driver.GenerateResult{}, ctx.Err()
		case <-time.After(10 * time.Second):
			return &driver.GenerateResult{}, nil
		}
	}
	quit := func(m tea.Model) (tea.Model, error) { return m, nil }

	start := time.Now()
	_, err := runGenWithView(context.Background(), "gen", nil, driver.GenerateRequest{}, generate, quit)
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("err = %v, want %v", err, errInterrupted)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("generation kept running for %s after the view quit", elapsed)
	}
}

func TestViewWaitsForGeneration(t *testing.T) {
	finished := make(chan struct{})
	want := &driver.GenerateResult{Files: []driver.FileResult{{Rel: "api.dy"}}}
	generate := func(ctx context.Context, _ driver.GenerateRequest) (*driver.GenerateResult, error) {
		defer close(finished)
		return want, ctx.Err()
	}
	view := func(m tea.Model) (tea.Model, error) {
		<-finished
		return m, nil
	}

	got, err := runGenWithView(context.Background(), "gen", []string{"api.dy"}, driver.GenerateRequest{}, generate, view)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("result = %+v", got)
	}
}

func TestParentCancellationIsNotAnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	generate := func(ctx context.Context, _ driver.GenerateRequest) (*driver.GenerateResult, error) {
		return nil, ctx.Err()
	}
	quit := func(m tea.Model) (tea.Model, error) { return m, nil }

	_, err := runGenWithView(ctx, "gen", nil, driver.GenerateRequest{}, generate, quit)
	if !errors.Is(err, context.Canceled) || errors.Is(err, errInterrupted) {
		t.Fatalf("err = %v", err)
	}
}
