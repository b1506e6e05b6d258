//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gohid/core"
	"gohid/host/monitor"
	"gohid/protocol"
)

var (
	device  = flag.String("device", "/dev/hidg0", "Gadget HID device path")
	text    = flag.String("text", "", "Override the typed text")
	pointer = flag.Bool("pointer", false, "Run the mouse move/click sub-sequence first")
	trace   = flag.Bool("trace", true, "Print the event trace to stdout")
)

func main() {
	flag.Parse()

	cfg := core.DefaultConfig()
	if *text != "" {
		cfg.Text = *text
	}
	cfg.PointerDemo = *pointer

	app := core.New(cfg)

	start := time.Now()
	app.SetClock(func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	})

	port, err := NewGadgetPort(app, *device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	app.SetBus(port)
	app.SetPort(port)
	app.SetLED(consoleLED{})

	if *trace {
		m := monitor.New(os.Stdout)
		m.Consume([]byte{protocol.FrameSync}) // lock the decoder on
		app.SetEventSink(func(kind protocol.EventKind, payload ...byte) {
			if frame, err := protocol.Encode(kind, payload); err == nil {
				m.Consume(frame)
			}
		})
	}

	fmt.Printf("Serving HID reports on %s\n", *device)
	app.Run(func() {
		port.Task()
		// Keep the loop from spinning a full core; the sequencer's own
		// cadence is 10ms, so a 1ms sleep costs no precision.
		time.Sleep(time.Millisecond)
	})
}

// consoleLED stands in for the board LED on a headless gadget host.
type consoleLED struct{}

func (consoleLED) Set(on bool) {}
