//go:build rp2040

package main

import (
	"machine"
	"runtime/volatile"
)

// outputPin is a push-pull output, low after configuration
type outputPin struct {
	pin machine.Pin
}

func newOutput(pin machine.Pin) outputPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return outputPin{pin: pin}
}

func (o outputPin) High() { o.pin.High() }
func (o outputPin) Low()  { o.pin.Low() }

// inputPin is a plain digital input
type inputPin struct {
	pin machine.Pin
}

func newInput(pin machine.Pin, mode machine.PinMode) inputPin {
	pin.Configure(machine.PinConfig{Mode: mode})
	return inputPin{pin: pin}
}

func (i inputPin) Get() bool { return i.pin.Get() }

// buttonPin is an input with a latched edge flag.
// TinyGo acknowledges the GPIO interrupt itself before calling back, so the
// latch is what the dispatcher sees as "this line is the source".
type buttonPin struct {
	inputPin
	pending volatile.Register8
}

func newButton(pin machine.Pin, mode machine.PinMode) *buttonPin {
	return &buttonPin{inputPin: newInput(pin, mode)}
}

// listen enables the edge interrupt; handler runs in interrupt context
func (b *buttonPin) listen(change machine.PinChange, handler func()) error {
	return b.pin.SetInterrupt(change, func(machine.Pin) {
		b.pending.Set(1)
		handler()
	})
}

func (b *buttonPin) InterruptPending() bool { return b.pending.Get() != 0 }
func (b *buttonPin) ClearInterrupt()        { b.pending.Set(0) }
