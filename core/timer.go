package core

// Tick is one count of a free-running hardware timer.
// The counter wraps to zero after 0xFFFFFFFF.
type Tick uint32

// Clock reads a free-running tick counter
type Clock interface {
	Now() Tick
}

// WrappingSub returns a-b modulo 2^32.
// Elapsed time between two snapshots must always go through here.
func WrappingSub(a, b Tick) Tick {
	return a - b
}

// MicrosToTicks converts microseconds to ticks at the given timer rate
func MicrosToTicks(us, ticksPerMicro uint32) Tick {
	return Tick(us * ticksPerMicro)
}

// TicksToMicros converts ticks to whole microseconds at the given timer rate
func TicksToMicros(ticks Tick, ticksPerMicro uint32) uint32 {
	return uint32(ticks) / ticksPerMicro
}

// BusyWait spins until d ticks have passed on c
func BusyWait(c Clock, d Tick) {
	start := c.Now()
	for WrappingSub(c.Now(), start) < d {
	}
}
