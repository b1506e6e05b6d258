package main

import (
	"flag"
	"fmt"
	"os"

	"gohid/host/monitor"
	"gohid/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block; the stream is quiet between events

	fmt.Printf("Attaching to %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Println("Following device events (Ctrl-C to stop):")
	m := monitor.New(os.Stdout)
	if err := m.Follow(port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if typed := m.Typed(); typed != "" {
		fmt.Printf("\nDevice typed: %q\n", typed)
	}
}
