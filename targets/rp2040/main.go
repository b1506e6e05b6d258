//go:build rp2040 || rp2350

package main

import (
	"machine"

	"gohid/core"
)

func main() {
	// Clear any watchdog state left over from a previous reset.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	// USB CDC for the debug event stream.
	InitSerial()

	// Hardware timer for the millisecond clock.
	InitClock()

	app := core.New(core.DefaultConfig())
	app.SetClock(Millis)

	usb := NewUSBPort(app)
	app.SetBus(usb)
	app.SetPort(usb)

	app.SetLED(newIndicator(app))
	app.SetEventSink(SerialSink)

	// The USB stack runs from interrupts; TxHandler/RxHandler/Setup
	// callbacks fire between loop iterations. The poll body only has to
	// drain the event stream and tick the app.
	app.Run(func() {
		usb.Task()
	})
}
