//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// masked stands in for the interrupt mask on regular Go.
// Goroutines acting as interrupt context contend on it with the foreground,
// which gives the same all-or-nothing view as masking on a single core.
var masked sync.Mutex

// disableInterrupts enters the critical section (not reentrant)
func disableInterrupts() State {
	masked.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	masked.Unlock()
}
