// Package prof wires the runtime profilers behind --cpu-profile and
// --mem-profile.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session holds the profilers started for one run.
type Session struct {
	cpuFile *os.File
	memPath string
	stopped bool
}

// Start enables CPU profiling into cpuPath and arranges for a heap profile
// to be written to memPath on Stop. Empty paths disable the profiler.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	s.cpuFile = f
	return s, nil
}

// Stop ends CPU profiling and writes the heap profile.
// It is safe to call on a nil Session and more than once.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true

	var errs []error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}
		s.cpuFile = nil
	}
	if s.memPath != "" {
		if err := writeMem(s.memPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close heap profile: %w", closeErr)
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
