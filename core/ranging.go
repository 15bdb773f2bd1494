package core

// Measurement is the outcome of one echo window
type Measurement struct {
	Start    Tick // snapshot when the echo went high
	End      Tick // snapshot when the echo went low
	Elapsed  Tick // End - Start, modulo the counter width
	CM       uint32
	TimedOut bool // an edge wait hit EchoTimeoutMicros
}

// Message classifies the measurement for display
func (m Measurement) Message(maxCM uint32) Message {
	if m.TimedOut {
		return Message{Kind: KindOutOfRange}
	}
	return Classify(m.CM, maxCM)
}

// Ranger times echo windows by polling the echo line.
// The echo line belongs to the foreground loop alone and is read without
// entering a critical section.
type Ranger struct {
	echo    Input
	clock   Clock
	cfg     Config
	timeout Tick
	status  Output

	// rise deadline is armed only after a trigger pulse went out
	fired     FireCounter
	seenFires uint32
}

// FireCounter reports how many trigger pulses have been fired.
// *Dispatcher implements it.
type FireCounter interface {
	Presses() uint32
}

// NewRanger creates a ranging loop reading echo against clock
func NewRanger(echo Input, clock Clock, cfg Config) *Ranger {
	if echo == nil || clock == nil {
		panic("ranger needs an echo line and a clock")
	}
	applyDefaults(&cfg)
	return &Ranger{
		echo:    echo,
		clock:   clock,
		cfg:     cfg,
		timeout: MicrosToTicks(cfg.EchoTimeoutMicros, cfg.TicksPerMicro),
	}
}

// SetStatusLED sets an output held high for the duration of each echo window
func (r *Ranger) SetStatusLED(led Output) {
	r.status = led
}

// ArmOn bounds the rising-edge wait by EchoTimeoutMicros once src reports
// a new trigger pulse. Without it only the falling-edge wait is bounded,
// so an idle sensor never times out.
func (r *Ranger) ArmOn(src FireCounter) {
	r.fired = src
	if src != nil {
		r.seenFires = src.Presses()
	}
}

// Measure waits for one full echo window and converts it to a distance.
// With a zero EchoTimeoutMicros it spins until both edges arrive.
func (r *Ranger) Measure() Measurement {
	if !r.waitRise() {
		RecordEvent(EvtEchoTimeout, r.clock.Now(), 1)
		return Measurement{TimedOut: true}
	}
	t0 := r.clock.Now()
	if r.status != nil {
		r.status.High()
	}

	ok := r.waitLevel(false)
	if r.status != nil {
		r.status.Low()
	}
	if !ok {
		RecordEvent(EvtEchoTimeout, r.clock.Now(), 2)
		return Measurement{Start: t0, TimedOut: true}
	}
	t1 := r.clock.Now()

	elapsed := WrappingSub(t1, t0)
	RecordEvent(EvtEchoRise, t0, 0)
	RecordEvent(EvtEchoFall, t1, uint32(elapsed))

	return Measurement{
		Start:   t0,
		End:     t1,
		Elapsed: elapsed,
		CM:      DistanceCM(elapsed, r.cfg.TicksPerMicro),
	}
}

// waitRise polls for the echo going high. The deadline starts when a
// trigger pulse is seen; before that the wait is unbounded.
func (r *Ranger) waitRise() bool {
	if r.timeout == 0 {
		return r.waitLevel(true)
	}

	armed := false
	var start Tick
	for !r.echo.Get() {
		if !armed {
			if r.fired != nil {
				if p := r.fired.Presses(); p != r.seenFires {
					r.seenFires = p
					armed = true
					start = r.clock.Now()
				}
			}
			continue
		}
		if WrappingSub(r.clock.Now(), start) >= r.timeout {
			return false
		}
	}
	if r.fired != nil {
		r.seenFires = r.fired.Presses()
	}
	return true
}

// waitLevel polls the echo line until it reads high (or low).
// Returns false if the deadline passed first.
func (r *Ranger) waitLevel(high bool) bool {
	if r.timeout == 0 {
		for r.echo.Get() != high {
		}
		return true
	}

	start := r.clock.Now()
	for r.echo.Get() != high {
		if WrappingSub(r.clock.Now(), start) >= r.timeout {
			return false
		}
	}
	return true
}
