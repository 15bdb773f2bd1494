//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"metter/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word

	// The timer counts microseconds
	timerTicksPerMicro = 1
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// hwClock reads the low 32 bits of the 1MHz hardware timer.
// The low word wraps every ~71 minutes; core.WrappingSub handles that.
type hwClock struct{}

func (hwClock) Now() core.Tick {
	return core.Tick(timerRAWL.Get())
}
