//go:build rp2040

package main

import (
	"machine"

	"metter/core"
	"metter/display"

	"tinygo.org/x/drivers/ssd1306"
)

// Board wiring
const (
	echoPin    = machine.GPIO0
	triggerPin = machine.GPIO1
	sdaPin     = machine.GPIO4 // I2C0 SDA
	sclPin     = machine.GPIO5 // I2C0 SCL
	buttonGPIO = machine.GPIO6
	statusPin  = machine.GPIO7
	redPin     = machine.GPIO8
	yellowPin  = machine.GPIO9
	greenPin   = machine.GPIO10

	displayAddr = 0x3C

	// Give up on an echo edge after 100ms, well past the 1000cm window
	echoTimeoutMicros = 100000
)

func main() {
	InitLog()
	core.Logln("Metter")

	cfg := core.Config{
		TicksPerMicro:     timerTicksPerMicro,
		EchoTimeoutMicros: echoTimeoutMicros,
	}
	clock := hwClock{}

	// Shared pins go into the registry before the button interrupt is enabled
	pins := core.NewPins()
	trigger := newTrigger(pins, clock, cfg)
	button := newButton(buttonGPIO, machine.PinInputPulldown)
	pins.Button.Install(button)
	dispatcher := core.NewDispatcher(pins.Button, trigger)

	// Display
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sdaPin,
		SCL:       sclPin,
	})
	if err != nil {
		panic("i2c: " + err.Error())
	}
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: displayAddr,
		Width:   128,
		Height:  64,
	})
	presenter := display.NewPresenter(dev, display.DefaultStyles())
	if err := presenter.Init("Metter"); err != nil {
		panic("Cannot initialize the display: " + err.Error())
	}

	// The echo line is only read by the ranging loop, so it stays out of the registry
	ranger := core.NewRanger(newInput(echoPin, machine.PinInput), clock, cfg)
	ranger.SetStatusLED(newOutput(statusPin))

	app := core.NewAppliance(ranger, dispatcher)
	app.SetIndicator(core.NewIndicator(newOutput(redPin), newOutput(yellowPin), newOutput(greenPin)))

	if err := button.listen(machine.PinFalling, dispatcher.Handle); err != nil {
		panic("button interrupt: " + err.Error())
	}

	err = app.Run(presenter.Show)
	core.DumpEvents()
	panic("display flush: " + err.Error())
}
