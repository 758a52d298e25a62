package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile indicates a profile could not be started or written.
var ErrProfile = errors.New("profile")

// Profiler starts and stops the profiles enabled by its [Config].
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Enabled reports whether any profile output is set.
func (p *Profiler) Enabled() bool {
	return p.CPUProfile != "" || p.HeapProfile != "" || p.AllocsProfile != "" || p.GoroutineProfile != ""
}

// Start applies the memory profile rate and starts CPU profiling. It does
// nothing when no profile is enabled.
func (p *Profiler) Start() error {
	if !p.Enabled() {
		return nil
	}

	if p.MemProfileRate > 0 {
		runtime.MemProfileRate = p.MemProfileRate
	}

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: cpu: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: cpu: %w", ErrProfile, err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop ends CPU profiling and writes the snapshot profiles. Calling Stop
// again is a no-op for the CPU profile.
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: cpu: %w", ErrProfile, err))
		}

		p.cpuFile = nil
	}

	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
		{"goroutine", p.GoroutineProfile},
	}

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		err := writeSnapshot(s.name, s.path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func writeSnapshot(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("%w: unknown profile %q", ErrProfile, name)
	}

	if name == "heap" || name == "allocs" {
		runtime.GC()
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s: %w", ErrProfile, name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, name, err)
	}

	return nil
}
