package main

import (
	"fmt"
	"io"
	"time"

	"dandiya/internal/buildpipeline"
)

// printStageTimings prints the time spent per stage, summed over files.
func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "parsed %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageParse)))
	fmt.Fprintf(out, "emitted %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageEmit)))
	fmt.Fprintf(out, "written %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageWrite)))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
