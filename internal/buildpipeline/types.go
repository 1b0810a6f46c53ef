// Package buildpipeline describes the progress of batch generation as a
// stream of per-file events.
package buildpipeline

import "time"

// Stage describes a phase of generating one file.
type Stage string

const (
	// StageParse covers loading, tokenizing and parsing a .dy file.
	StageParse Stage = "parse"
	// StageEmit renders the parsed unit for every target language.
	StageEmit Stage = "emit"
	// StageWrite stores the rendered outputs on disk.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	// StatusCached marks a file whose outputs came from the cache.
	StatusCached Status = "cached"
	StatusDone   Status = "done"
	StatusError  Status = "error"
)

// Terminal reports whether no further events follow for the file.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError || s == StatusCached
}

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

// Add accumulates dur into stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] += dur
}

func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
