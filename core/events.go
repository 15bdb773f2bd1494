package core

// Event captures a timing-critical event for post-mortem analysis
type Event struct {
	Type  uint8 // Event type code
	Clock Tick  // Timer snapshot at the event
	Value uint32
}

// Event type codes
const (
	EvtTrigger     = 1 // trigger pulse emitted (value: width in ticks)
	EvtEchoRise    = 2 // echo line went high
	EvtEchoFall    = 3 // echo line went low (value: elapsed ticks)
	EvtEchoTimeout = 4 // echo edge never came (value: step that gave up)
	EvtSpurious    = 5 // dispatcher entered without a pending button edge
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// RecordEvent stores an event in the ring buffer.
// Safe from both contexts; must not be called while a Slot is held.
func RecordEvent(eventType uint8, clock Tick, value uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	idx := eventRingHead
	eventRing[idx] = Event{Type: eventType, Clock: clock, Value: value}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// ClearEvents empties the ring buffer
func ClearEvents() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}

// EventName returns the log name of an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtTrigger:
		return "TRIGGER"
	case EvtEchoRise:
		return "ECHO_RISE"
	case EvtEchoFall:
		return "ECHO_FALL"
	case EvtEchoTimeout:
		return "ECHO_TIMEOUT!"
	case EvtSpurious:
		return "SPURIOUS_IRQ"
	default:
		return "UNKNOWN"
	}
}

// DumpEvents writes the ring buffer to the log, oldest first
func DumpEvents() {
	Logln("[EVT] === Event Ring Dump ===")
	for _, evt := range Events() {
		Logln("[EVT] " + EventName(evt.Type) +
			" clock=" + utoa(uint32(evt.Clock)) +
			" v=" + utoa(evt.Value))
	}
	Logln("[EVT] === End Dump ===")
}
