// Package prof wraps the runtime profilers behind start/stop closures for
// the CLI. Включается флагами --cpu-profile, --mem-profile и --runtime-trace.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// StartCPU enables CPU profiling and returns a stop function that flushes
// and closes the output file.
func StartCPU(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

// StartTrace writes runtime trace data to path until the returned stop
// function is called.
func StartTrace(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		trace.Stop()
		_ = f.Close()
	}, nil
}

// WriteMem captures a heap profile to path after forcing a collection.
func WriteMem(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
