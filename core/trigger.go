package core

// Pulser emits one trigger pulse on the ranging line.
// Fire is called from interrupt context.
type Pulser interface {
	Fire()
}

// Trigger pulses the ranging output by bit-banging the shared trigger line
type Trigger struct {
	slot  *Slot[Output]
	clock Clock
	width Tick
}

// NewTrigger creates a software trigger on the line installed in slot
func NewTrigger(slot *Slot[Output], clock Clock, ticksPerMicro uint32) *Trigger {
	return &Trigger{
		slot:  slot,
		clock: clock,
		width: MicrosToTicks(TriggerPulseMicros, ticksPerMicro),
	}
}

// Fire drives the trigger line high for TriggerPulseMicros, then low.
// The line must be low on entry. Interrupts stay masked for at most
// MaxMaskedMicros.
func (t *Trigger) Fire() {
	var start Tick
	t.slot.With(func(out Output) {
		start = t.clock.Now()
		out.High()
		BusyWait(t.clock, t.width)
		out.Low()
	})
	RecordEvent(EvtTrigger, start, uint32(t.width))
}
