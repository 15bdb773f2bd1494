package core

// ShowFunc presents one message; an error is fatal to the loop
type ShowFunc func(Message) error

// Appliance is the foreground loop: measure, log, indicate, present
type Appliance struct {
	ranger     *Ranger
	dispatcher *Dispatcher
	indicator  *Indicator
	maxCM      uint32

	lastPresses uint32
}

// NewAppliance wires the ranging loop to the button dispatcher.
// dispatcher may be nil on boards without a button; otherwise its presses
// arm the ranger's rising-edge deadline.
func NewAppliance(ranger *Ranger, dispatcher *Dispatcher) *Appliance {
	if dispatcher != nil {
		ranger.ArmOn(dispatcher)
	}
	return &Appliance{
		ranger:     ranger,
		dispatcher: dispatcher,
		maxCM:      ranger.cfg.MaxDistanceCM,
	}
}

// SetIndicator adds proximity LEDs
func (a *Appliance) SetIndicator(ind *Indicator) {
	a.indicator = ind
}

// Step runs one loop iteration and returns the presentation error, if any
func (a *Appliance) Step(show ShowFunc) error {
	m := a.ranger.Measure()
	a.logPresses()

	msg := m.Message(a.maxCM)
	switch {
	case m.TimedOut:
		LogAsync("timeout")
	case msg.Kind == KindOutOfRange:
		LogAsync("lost " + FormatCM(m.CM))
	default:
		LogAsync(FormatCM(msg.CM))
	}

	if a.indicator != nil {
		a.indicator.Show(msg)
	}
	return show(msg)
}

// Run loops forever; it only returns when show fails
func (a *Appliance) Run(show ShowFunc) error {
	for {
		if err := a.Step(show); err != nil {
			return err
		}
	}
}

// logPresses reports button presses serviced since the last iteration.
// The interrupt handler only counts; the log line is written from here.
func (a *Appliance) logPresses() {
	if a.dispatcher == nil {
		return
	}
	p := a.dispatcher.Presses()
	if p != a.lastPresses {
		LogAsync("button pressed x" + utoa(p-a.lastPresses))
		a.lastPresses = p
	}
}
