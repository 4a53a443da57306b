// Package profiling provides CPU, memory, and trace profiling utilities.
//
// Wired to the --profile-cpu, --profile-mem, and --profile-trace flags, it
// answers questions like how key length growth behaves under bulk minting
// (lexindex seed 100000 --profile-cpu cpu.out).
package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiler starts and stops the process-wide profiles. One profile of
// each kind can run at a time.
type Profiler struct{}

// NewProfiler creates a new Profiler instance.
func NewProfiler() *Profiler {
	return &Profiler{}
}

// StartCPU starts CPU profiling into the given file. The returned cleanup
// stops profiling and flushes the data.
func (p *Profiler) StartCPU(path string) (func(), error) {
	return startProfile(path, "CPU profile", pprof.StartCPUProfile, pprof.StopCPUProfile)
}

// StartTrace starts execution tracing into the given file. The returned
// cleanup stops the trace.
func (p *Profiler) StartTrace(path string) (func(), error) {
	return startProfile(path, "trace", trace.Start, trace.Stop)
}

// WriteHeap writes a point-in-time heap profile to path. Garbage is
// collected first so the snapshot shows live objects, not noise.
func (p *Profiler) WriteHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create heap profile file: %w", err)
	}
	defer func() { _ = f.Close() }()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}

// startProfile creates the output file, starts a profile into it, and
// returns a cleanup that stops the profile and closes the file.
func startProfile(path, kind string, start func(io.Writer) error, stop func()) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	if err := start(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start %s: %w", kind, err)
	}
	return func() {
		stop()
		_ = f.Close()
	}, nil
}
