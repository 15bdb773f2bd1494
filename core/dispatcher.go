package core

import "sync/atomic"

// Dispatcher is the button interrupt entry point.
// It fires the trigger when the button raised the interrupt and always
// acknowledges the button's pending flag so the edge cannot re-enter.
type Dispatcher struct {
	button  *Slot[EdgeInput]
	trigger Pulser

	presses  uint32
	spurious uint32
}

// NewDispatcher creates a dispatcher for the button in slot
func NewDispatcher(button *Slot[EdgeInput], trigger Pulser) *Dispatcher {
	if trigger == nil {
		panic("dispatcher needs a trigger")
	}
	return &Dispatcher{button: button, trigger: trigger}
}

// Handle services one interrupt. Called by the platform from interrupt
// context; it never blocks on the foreground loop.
func (d *Dispatcher) Handle() {
	var pending bool
	d.button.With(func(b EdgeInput) {
		pending = b.InterruptPending()
	})

	if pending {
		atomic.AddUint32(&d.presses, 1)
		d.trigger.Fire()
	} else {
		atomic.AddUint32(&d.spurious, 1)
		RecordEvent(EvtSpurious, 0, atomic.LoadUint32(&d.spurious))
	}

	d.button.With(func(b EdgeInput) {
		b.ClearInterrupt()
	})
}

// Presses returns the number of button edges that fired the trigger
func (d *Dispatcher) Presses() uint32 {
	return atomic.LoadUint32(&d.presses)
}

// Spurious returns the number of entries with no pending button edge
func (d *Dispatcher) Spurious() uint32 {
	return atomic.LoadUint32(&d.spurious)
}
