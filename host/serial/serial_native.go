package serial

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tarm/serial"
)

// tarmPort is a Port on a real tty
type tarmPort struct {
	*serial.Port
}

// Open opens the firmware's USB log port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, fmt.Errorf("no serial device given")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return tarmPort{port}, nil
}

// ScanLines calls fn with each non-empty line read from r until EOF.
// The firmware ends lines with "\r\n"; a bare "\n" is accepted too.
func ScanLines(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}
