package core

// HIDPort is the abstract report transport that core code sends through.
// Target code wraps the real USB device stack; tests and the simulator
// supply fakes. A false return means the report was not accepted and the
// caller retries on a later tick.
type HIDPort interface {
	// Ready reports whether the interrupt IN endpoint can take a report.
	// No side effects.
	Ready() bool

	// SendKeyboard attempts to queue one keyboard report.
	SendKeyboard(reportID, modifiers byte, keys [6]byte) bool

	// SendMouse attempts to queue one relative mouse report.
	SendMouse(reportID, buttons byte, dx, dy, wheel int8) bool
}

// Bus exposes the USB link status the sequencer gates on. Backed by the
// device stack on hardware, by a scripted fake in tests.
type Bus interface {
	// Mounted reports whether enumeration has completed.
	Mounted() bool

	// Suspended reports whether the bus is suspended.
	Suspended() bool

	// RemoteWakeup asks the host to resume a suspended bus.
	RemoteWakeup()
}

// LEDDriver drives the link-state indicator output.
type LEDDriver interface {
	Set(on bool)
}

// ClockFunc returns milliseconds from an arbitrary epoch. Targets supply
// board millis; tests supply a settable fake.
type ClockFunc func() uint32

// nullLED is the default indicator when a target never registers one.
type nullLED struct{}

func (nullLED) Set(bool) {}
