package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMeasureOneCentimeter(t *testing.T) {
	echo := &scriptEcho{levels: []bool{false, false, true, true, false}}
	clock := &seqClock{ticks: []Tick{0, 928}}
	r := NewRanger(echo, clock, Config{})

	m := r.Measure()

	if m.Elapsed != 928 {
		t.Errorf("Expected 928 elapsed ticks, got %d", m.Elapsed)
	}
	if m.CM != 1 {
		t.Errorf("Expected 1 cm, got %d", m.CM)
	}
	msg := m.Message(MaxDistanceCM)
	if msg.Kind != KindDistance || msg.CM != 1 {
		t.Errorf("Expected distance message of 1 cm, got %+v", msg)
	}
}

func TestMeasureOutOfRange(t *testing.T) {
	echo := &scriptEcho{levels: []bool{true, false}}
	clock := &seqClock{ticks: []Tick{1000, 1000 + 1500*16*58}}
	r := NewRanger(echo, clock, Config{})

	m := r.Measure()

	if m.CM != 1500 {
		t.Errorf("Expected 1500 cm, got %d", m.CM)
	}
	if msg := m.Message(MaxDistanceCM); msg.Kind != KindOutOfRange {
		t.Errorf("Expected out of range, got %+v", msg)
	}
}

func TestMeasureAcrossTimerWrap(t *testing.T) {
	ClearEvents()
	echo := &scriptEcho{levels: []bool{true, false}}
	clock := &seqClock{ticks: []Tick{0xFFFFFD00, 0x00000200}}
	r := NewRanger(echo, clock, Config{})

	m := r.Measure()

	if m.Elapsed != 0x500 {
		t.Errorf("Expected 0x500 elapsed ticks across the wrap, got %#x", m.Elapsed)
	}
	if m.CM != 1 {
		t.Errorf("Expected 1 cm, got %d", m.CM)
	}

	evts := Events()
	if len(evts) != 2 || evts[0].Type != EvtEchoRise || evts[1].Type != EvtEchoFall || evts[1].Value != 0x500 {
		t.Errorf("Expected rise/fall events, got %+v", evts)
	}
}

func TestMeasureStatusLED(t *testing.T) {
	echo := &scriptEcho{levels: []bool{true, false}}
	led := &fakeOutput{}
	r := NewRanger(echo, &seqClock{ticks: []Tick{0, 928}}, Config{})
	r.SetStatusLED(led)

	r.Measure()

	if len(led.writes) != 2 || !led.writes[0] || led.writes[1] {
		t.Errorf("Expected LED on for the echo window then off, got %v", led.writes)
	}
}

func TestMeasureTimeoutWaitingForRise(t *testing.T) {
	ClearEvents()
	echo := &scriptEcho{levels: []bool{false}}
	clock := &stepClock{step: 1000}
	r := NewRanger(echo, clock, Config{EchoTimeoutMicros: 100000})
	fires := &fireCount{}
	r.ArmOn(fires)
	fires.n.Add(1)

	m := r.Measure()

	if !m.TimedOut {
		t.Fatal("Expected timeout with the echo stuck low after a pulse")
	}
	if msg := m.Message(MaxDistanceCM); msg.Kind != KindOutOfRange {
		t.Errorf("Expected out of range on timeout, got %+v", msg)
	}

	evts := Events()
	if len(evts) != 1 || evts[0].Type != EvtEchoTimeout || evts[0].Value != 1 {
		t.Errorf("Expected one timeout event at the rise wait, got %+v", evts)
	}
}

func TestMeasureTimeoutWaitingForFall(t *testing.T) {
	echo := &scriptEcho{levels: []bool{true}}
	led := &fakeOutput{}
	r := NewRanger(echo, &stepClock{t: 0xFFFF0000, step: 5000}, Config{EchoTimeoutMicros: 70000})
	r.SetStatusLED(led)

	m := r.Measure()

	if !m.TimedOut {
		t.Fatal("Expected timeout with the echo stuck high")
	}
	if led.high {
		t.Error("Expected status LED off after a timeout")
	}
}

func TestMeasureWithinDeadline(t *testing.T) {
	// Deadline longer than the window: result matches the unbounded wait
	echo := &scriptEcho{levels: []bool{false, true, true, false}}
	clock := &stepClock{step: 928}
	r := NewRanger(echo, clock, Config{EchoTimeoutMicros: 60000})

	m := r.Measure()

	if m.TimedOut {
		t.Fatal("Unexpected timeout")
	}
	if m.Elapsed == 0 || m.CM > MaxDistanceCM {
		t.Errorf("Implausible measurement %+v", m)
	}
}

// gatedEcho stays low until released, then gives one high poll
type gatedEcho struct {
	released atomic.Bool
	polls    atomic.Uint32
}

func (e *gatedEcho) Get() bool {
	if !e.released.Load() {
		return false
	}
	return e.polls.Add(1) == 1
}

func TestMeasureUnboundedWaitHangs(t *testing.T) {
	echo := &gatedEcho{}
	r := NewRanger(echo, &seqClock{ticks: []Tick{0, 928}}, Config{})

	done := make(chan Measurement, 1)
	go func() { done <- r.Measure() }()

	select {
	case m := <-done:
		t.Fatalf("Measure returned %+v without any echo edge", m)
	case <-time.After(20 * time.Millisecond):
	}

	echo.released.Store(true)

	select {
	case m := <-done:
		if m.TimedOut || m.CM != 1 {
			t.Errorf("Expected 1 cm once the echo arrived, got %+v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("Measure still blocked after the echo arrived")
	}
}

func TestMeasureIdleRiseWaitIsUnbounded(t *testing.T) {
	echo := &gatedEcho{}
	fires := &fireCount{}
	r := NewRanger(echo, &stepClock{step: 1}, Config{EchoTimeoutMicros: 10})
	r.ArmOn(fires)

	done := make(chan Measurement, 1)
	go func() { done <- r.Measure() }()

	select {
	case m := <-done:
		t.Fatalf("Measure gave up with no pulse fired: %+v", m)
	case <-time.After(20 * time.Millisecond):
	}

	echo.released.Store(true)

	select {
	case m := <-done:
		if m.TimedOut {
			t.Errorf("Expected a reading, got %+v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("Measure still blocked after the echo arrived")
	}
}

func TestMeasureConsumesPulseBeforeRise(t *testing.T) {
	// The pulse that produced a reading must not arm the next wait
	fires := &fireCount{}
	echo := &scriptEcho{levels: []bool{false, true, false}}
	r := NewRanger(echo, &stepClock{step: 1}, Config{EchoTimeoutMicros: 1000})
	r.ArmOn(fires)
	fires.n.Add(1)

	if m := r.Measure(); m.TimedOut {
		t.Fatalf("Unexpected timeout: %+v", m)
	}
	if r.seenFires != 1 {
		t.Errorf("Expected the pulse to be consumed, seen=%d", r.seenFires)
	}
}

func TestNewRangerNeedsEchoAndClock(t *testing.T) {
	expectPanic(t, "NewRanger(nil echo)", func() {
		NewRanger(nil, &stepClock{}, Config{})
	})
}
