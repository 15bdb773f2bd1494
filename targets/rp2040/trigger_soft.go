//go:build rp2040 && softtrigger

package main

import "metter/core"

// newTrigger bit-bangs the trigger pulse from the button interrupt.
// Interrupts stay masked for up to core.MaxMaskedMicros per press.
func newTrigger(pins *core.Pins, clock core.Clock, cfg core.Config) core.Pulser {
	pins.Trigger.Install(newOutput(triggerPin))
	return core.NewTrigger(pins.Trigger, clock, cfg.TicksPerMicro)
}
