//go:build linux

package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Resolve returns the logical CPU ids the calling thread may run on, in
// ascending order. ok is false when the affinity mask cannot be read.
func Resolve() (cores []int, ok bool) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil { // 0 = current thread
		return nil, false
	}

	n := set.Count()
	if n == 0 {
		return nil, false
	}

	cores = make([]int, 0, n)
	for id := 0; len(cores) < n; id++ {
		if set.IsSet(id) {
			cores = append(cores, id)
		}
	}
	return cores, true
}

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to the given core. The returned release function restores the previous
// mask and unlocks the thread; it must run on the same goroutine.
func Pin(core int) (release func(), err error) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("cpu: read affinity: %w", err)
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("cpu: pin to core %d: %w", core, err)
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
