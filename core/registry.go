package core

// Slot is a guarded, optional home for one line handle that both the
// foreground loop and the interrupt handler need to reach.
//
// A slot is filled exactly once during start-up, before interrupts are
// enabled, and from then on is only touched through With.
type Slot[T any] struct {
	name      string
	handle    T
	installed bool
}

// NewSlot returns an empty slot; name is used in panic messages only
func NewSlot[T any](name string) *Slot[T] {
	return &Slot[T]{name: name}
}

// Install moves a configured handle into the slot.
// Panics if the slot already holds a handle.
func (s *Slot[T]) Install(handle T) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if s.installed {
		panic("pin slot " + s.name + " installed twice")
	}
	s.handle = handle
	s.installed = true
}

// With runs fn with exclusive access to the handle.
// Interrupts stay masked for the whole call, so fn must not wait on an
// external signal. Calls must not be nested.
// Panics if the slot was never installed.
func (s *Slot[T]) With(fn func(T)) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !s.installed {
		panic("pin slot " + s.name + " used before install")
	}
	fn(s.handle)
}

// Installed reports whether the slot holds a handle
func (s *Slot[T]) Installed() bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return s.installed
}

// Pins holds the line handles shared between the button interrupt and the
// foreground loop. The echo line is not here: only the ranging loop reads it.
type Pins struct {
	Button  *Slot[EdgeInput]
	Trigger *Slot[Output]
}

// NewPins returns an empty registry
func NewPins() *Pins {
	return &Pins{
		Button:  NewSlot[EdgeInput]("button"),
		Trigger: NewSlot[Output]("trigger"),
	}
}
