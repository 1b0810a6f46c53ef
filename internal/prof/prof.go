// Package prof captures runtime profiles of a dandiya invocation.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/cockroachdb/errors"
)

// Options names the files to write; empty paths disable that profile.
type Options struct {
	CPU   string
	Mem   string
	Trace string
}

func (o Options) Enabled() bool {
	return o.CPU != "" || o.Mem != "" || o.Trace != ""
}

// Session is a set of running profiles.
type Session struct {
	opts      Options
	cpuFile   *os.File
	traceFile *os.File
}

// Start begins CPU profiling and runtime tracing as requested. On error
// everything already started is stopped again.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPU != "" {
		f, err := os.Create(opts.CPU)
		if err != nil {
			return nil, errors.Wrap(err, "cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "cpu profile")
		}
		s.cpuFile = f
	}
	if opts.Trace != "" {
		f, err := os.Create(opts.Trace)
		if err != nil {
			s.stopCPU()
			return nil, errors.Wrap(err, "trace")
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.stopCPU()
			return nil, errors.Wrap(err, "trace")
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop ends the running profiles and writes the heap profile, if any.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	s.stopCPU()
	if s.traceFile != nil {
		trace.Stop()
		_ = s.traceFile.Close()
		s.traceFile = nil
	}
	if s.opts.Mem != "" {
		return writeMem(s.opts.Mem)
	}
	return nil
}

func (s *Session) stopCPU() {
	if s.cpuFile == nil {
		return
	}
	pprof.StopCPUProfile()
	_ = s.cpuFile.Close()
	s.cpuFile = nil
}

func writeMem(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "heap profile")
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "heap profile")
	}
	return errors.Wrap(f.Close(), "heap profile")
}
