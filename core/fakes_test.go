package core

import "sync/atomic"

// seqClock returns scripted snapshots, repeating the last one
type seqClock struct {
	ticks []Tick
	i     int
}

func (c *seqClock) Now() Tick {
	idx := c.i
	if idx >= len(c.ticks) {
		idx = len(c.ticks) - 1
	}
	c.i++
	return c.ticks[idx]
}

// stepClock advances by step on every read
type stepClock struct {
	t    Tick
	step Tick
}

func (c *stepClock) Now() Tick {
	v := c.t
	c.t += c.step
	return v
}

// scriptEcho returns scripted levels, repeating the last one
type scriptEcho struct {
	levels []bool
	i      int
}

func (e *scriptEcho) Get() bool {
	idx := e.i
	if idx >= len(e.levels) {
		idx = len(e.levels) - 1
	}
	e.i++
	return e.levels[idx]
}

// cycleEcho returns its levels in a loop, one echo window per cycle
type cycleEcho struct {
	levels []bool
	i      int
}

func (e *cycleEcho) Get() bool {
	v := e.levels[e.i%len(e.levels)]
	e.i++
	return v
}

// fireCount is a FireCounter bumped by the test
type fireCount struct {
	n atomic.Uint32
}

func (f *fireCount) Presses() uint32 { return f.n.Load() }

// fakeOutput records every level written, stamped with clock if set
type fakeOutput struct {
	clock  *stepClock
	high   bool
	writes []bool
	stamps []Tick
}

func (o *fakeOutput) High() { o.write(true) }
func (o *fakeOutput) Low()  { o.write(false) }

func (o *fakeOutput) write(v bool) {
	o.high = v
	o.writes = append(o.writes, v)
	if o.clock != nil {
		o.stamps = append(o.stamps, o.clock.t)
	}
}

// fakeEdge is a button line with a latched interrupt flag
type fakeEdge struct {
	level   bool
	pending bool
	cleared int
}

func (e *fakeEdge) Get() bool              { return e.level }
func (e *fakeEdge) InterruptPending() bool { return e.pending }
func (e *fakeEdge) ClearInterrupt() {
	e.pending = false
	e.cleared++
}

// countPulser counts Fire calls
type countPulser struct {
	fired int
}

func (p *countPulser) Fire() { p.fired++ }

// captureLog collects log lines until the returned func restores the writer
func captureLog() (*[]string, func()) {
	var lines []string
	SetLogWriter(func(s string) { lines = append(lines, s) })
	return &lines, func() { SetLogWriter(nil) }
}
