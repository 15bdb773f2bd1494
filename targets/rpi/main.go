//go:build linux && !tinygo

// Command rpi runs the rangefinder on a Linux single-board computer.
// The button edge goroutine plays the interrupt handler.
package main

import (
	"fmt"
	"log"
	"time"

	"metter/core"
	"metter/display"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Board wiring (BCM names)
const (
	echoName    = "GPIO17"
	triggerName = "GPIO27"
	buttonName  = "GPIO22"
	statusName  = "GPIO23"
	redName     = "GPIO5"
	yellowName  = "GPIO6"
	greenName   = "GPIO13"
	i2cName     = "" // first available bus; the panel answers at 0x3C

	// Linux scheduling jitter makes a deadline mandatory here
	echoTimeoutMicros = 100000
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph init: %w", err)
	}

	core.SetLogWriter(func(s string) { log.Println(s) })
	core.InitAsyncLog()

	cfg := core.Config{
		TicksPerMicro:     1,
		EchoTimeoutMicros: echoTimeoutMicros,
	}
	clock := monoClock{start: time.Now()}

	pins := core.NewPins()

	trig, err := newOutput(pinByName(triggerName))
	if err != nil {
		return fmt.Errorf("trigger pin: %w", err)
	}
	pins.Trigger.Install(trig)

	button, err := newButton(pinByName(buttonName), gpio.PullDown, gpio.FallingEdge)
	if err != nil {
		return fmt.Errorf("button pin: %w", err)
	}
	pins.Button.Install(button)

	dispatcher := core.NewDispatcher(pins.Button, core.NewTrigger(pins.Trigger, clock, cfg.TicksPerMicro))

	bus, err := i2creg.Open(i2cName)
	if err != nil {
		return fmt.Errorf("i2c: %w", err)
	}
	defer bus.Close()

	panel, err := newPanel(bus)
	if err != nil {
		return fmt.Errorf("cannot initialize the display: %w", err)
	}
	defer panel.Halt()

	presenter := display.NewPresenter(panel, display.DefaultStyles())
	if err := presenter.Init("Metter"); err != nil {
		return fmt.Errorf("cannot initialize the display: %w", err)
	}

	echo, err := newInput(pinByName(echoName), gpio.Float)
	if err != nil {
		return fmt.Errorf("echo pin: %w", err)
	}
	status, err := newOutput(pinByName(statusName))
	if err != nil {
		return fmt.Errorf("status pin: %w", err)
	}
	leds := make([]core.Output, 0, 3)
	for _, name := range []string{redName, yellowName, greenName} {
		led, err := newOutput(pinByName(name))
		if err != nil {
			return fmt.Errorf("led %s: %w", name, err)
		}
		leds = append(leds, led)
	}

	ranger := core.NewRanger(echo, clock, cfg)
	ranger.SetStatusLED(status)
	app := core.NewAppliance(ranger, dispatcher)
	app.SetIndicator(core.NewIndicator(leds[0], leds[1], leds[2]))

	button.listen(dispatcher.Handle)

	err = app.Run(presenter.Show)
	core.DumpEvents()
	return fmt.Errorf("display flush: %w", err)
}

// pinByName returns the named pin, or a pin whose every operation fails
// so the error surfaces where the pin is configured
func pinByName(name string) gpio.PinIO {
	if p := gpioreg.ByName(name); p != nil {
		return p
	}
	return gpio.INVALID
}
