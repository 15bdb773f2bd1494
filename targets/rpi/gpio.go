//go:build linux && !tinygo

package main

import (
	"sync/atomic"
	"time"

	"metter/core"

	"periph.io/x/conn/v3/gpio"
)

// outputPin drives a periph GPIO. Write errors surface on the next
// configuration call, so they are not reported per edge.
type outputPin struct {
	pin gpio.PinIO
}

func newOutput(pin gpio.PinIO) (outputPin, error) {
	return outputPin{pin: pin}, pin.Out(gpio.Low)
}

func (o outputPin) High() { o.pin.Out(gpio.High) }
func (o outputPin) Low()  { o.pin.Out(gpio.Low) }

// inputPin polls a periph GPIO
type inputPin struct {
	pin gpio.PinIO
}

func newInput(pin gpio.PinIO, pull gpio.Pull) (inputPin, error) {
	return inputPin{pin: pin}, pin.In(pull, gpio.NoEdge)
}

func (i inputPin) Get() bool { return i.pin.Read() == gpio.High }

// buttonPin turns periph edge detection into an interrupt: a goroutine
// blocks in WaitForEdge and runs the handler, which then contends with the
// foreground loop through the core critical section.
type buttonPin struct {
	pin     gpio.PinIO
	pending atomic.Bool
}

func newButton(pin gpio.PinIO, pull gpio.Pull, edge gpio.Edge) (*buttonPin, error) {
	if err := pin.In(pull, edge); err != nil {
		return nil, err
	}
	return &buttonPin{pin: pin}, nil
}

// listen starts the edge goroutine
func (b *buttonPin) listen(handler func()) {
	go func() {
		for {
			if b.pin.WaitForEdge(-1) {
				b.pending.Store(true)
				handler()
			}
		}
	}()
}

func (b *buttonPin) Get() bool              { return b.pin.Read() == gpio.High }
func (b *buttonPin) InterruptPending() bool { return b.pending.Load() }
func (b *buttonPin) ClearInterrupt()        { b.pending.Store(false) }

// monoClock counts microseconds since start in a wrapping 32-bit tick
type monoClock struct {
	start time.Time
}

func (c monoClock) Now() core.Tick {
	return core.Tick(uint32(time.Since(c.start).Microseconds()))
}
