package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"

	"metter/host/monitor"
	"metter/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw    = flag.Bool("raw", false, "Print every log line, not just readings")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		stats   monitor.Stats
		stopped atomic.Bool
	)

	// Closing the port ends Watch, which prints the summary
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		stopped.Store(true)
		port.Close()
	}()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", *device)
	err = monitor.Watch(port, func(l monitor.Line) {
		stats.Add(l)
		switch {
		case l.Kind == monitor.KindDistance:
			fmt.Printf("%6d cm\n", l.CM)
		case l.Kind == monitor.KindLost || l.Kind == monitor.KindTimeout:
			fmt.Printf("%9s  (%s)\n", "--", l.Raw)
		case *raw:
			fmt.Println(l.Raw)
		}
	})

	fmt.Println(stats)
	if err != nil && !stopped.Load() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
