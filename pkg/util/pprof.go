package util

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
)

// RunCPUProfile runs fn while writing a CPU profile to filename.
func RunCPUProfile(filename string, fn func() error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err = pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()
	return fn()
}

// WriteProfile writes the named runtime profile (e.g. "allocs", "heap")
// to filename.
func WriteProfile(filename, profile string) error {
	p := pprof.Lookup(profile)
	if p == nil {
		return errors.New("unknown profile: " + profile)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC()
	return p.WriteTo(f, 0)
}
