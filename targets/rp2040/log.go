//go:build rp2040

package main

import (
	"machine"

	"metter/core"
)

// InitLog sends core log lines to the USB CDC serial port.
// Lines are written synchronously: the foreground loop never yields, so a
// log goroutine would not get to run.
func InitLog() {
	core.SetLogWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
}
