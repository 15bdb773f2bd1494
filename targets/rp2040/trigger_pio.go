//go:build rp2040 && !softtrigger

package main

// PIO trigger: the state machine times the pulse, so the interrupt handler
// only pushes one FIFO word and never busy-waits with interrupts masked.

import (
	"machine"

	"metter/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

const (
	triggerPIOOrigin = 0   // Load at offset 0 for correct jump addresses
	triggerClkDiv    = 125 // 125MHz / 125 = one PIO cycle per microsecond
)

// buildTriggerProgram creates the pulse program using AssemblerV0.
// Each word pulled from the FIFO produces one high pulse of
// core.TriggerPulseMicros cycles.
func buildTriggerProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),                                             // 0: pull block
		asm.Set(rp2pio.SetDestPins, 1).Delay(core.TriggerPulseMicros - 1).Encode(), // 1: set pins, 1 [9]
		asm.Set(rp2pio.SetDestPins, 0).Encode(),                                    // 2: set pins, 0
		// .wrap
	}
}

// pioTrigger owns the trigger pin through a PIO state machine
type pioTrigger struct {
	slot  *core.Slot[rp2pio.StateMachine]
	clock core.Clock
	width uint32
}

// newTrigger loads the pulse program on PIO0 and hands the trigger pin to
// it. The pin never becomes a GPIO output, so pins.Trigger stays empty.
func newTrigger(pins *core.Pins, clock core.Clock, cfg core.Config) core.Pulser {
	pio := rp2pio.PIO0
	sm := pio.StateMachine(0)

	// Claim the state machine first
	sm.TryClaim()

	program := buildTriggerProgram()
	offset, err := pio.AddProgram(program, triggerPIOOrigin)
	if err != nil {
		panic("trigger PIO program: " + err.Error())
	}

	triggerPin.Configure(machine.PinConfig{Mode: pio.PinMode()})

	smCfg := rp2pio.DefaultStateMachineConfig()
	smCfg.SetSetPins(triggerPin, 1)
	smCfg.SetWrap(offset+uint8(len(program))-1, offset)
	smCfg.SetClkDivIntFrac(triggerClkDiv, 0)

	sm.Init(offset, smCfg)

	// Pin direction and level must be set after Init
	sm.SetPindirsConsecutive(triggerPin, 1, true)
	sm.SetPinsConsecutive(triggerPin, 1, false)
	sm.SetEnabled(true)

	t := &pioTrigger{
		slot:  core.NewSlot[rp2pio.StateMachine]("trigger pio"),
		clock: clock,
		width: core.TriggerPulseMicros * cfg.TicksPerMicro,
	}
	t.slot.Install(sm)
	return t
}

// Fire queues one pulse. A press while a pulse is still queued is dropped.
func (t *pioTrigger) Fire() {
	t.slot.With(func(sm rp2pio.StateMachine) {
		if !sm.IsTxFIFOFull() {
			sm.TxPut(1)
		}
	})
	core.RecordEvent(core.EvtTrigger, t.clock.Now(), t.width)
}
