// Package core implements the demo logic: a polled state machine that,
// once the host mounts the device, plays a scripted sequence of HID
// reports (pointer motion, a click, a typed string) and blinks the board
// LED at a cadence reflecting the USB link state. All hardware access
// goes through the interfaces in hal.go; nothing here blocks.
package core

import (
	"gohid/protocol"
)

// LinkState is the device's view of the USB connection.
type LinkState uint8

const (
	LinkNotMounted LinkState = iota
	LinkMounted
	LinkSuspended
)

func (s LinkState) String() string {
	switch s {
	case LinkNotMounted:
		return "not-mounted"
	case LinkMounted:
		return "mounted"
	case LinkSuspended:
		return "suspended"
	}
	return "unknown"
}

// EventSink receives debug events as they happen. Targets wire this to
// the protocol frame encoder on the CDC port; leave it nil to disable.
type EventSink func(kind protocol.EventKind, payload ...byte)

// App holds all mutable demo state. One instance per device; everything
// is driven from the single poll loop, so no locking is needed as long
// as the On* callbacks run on the same execution context as Poll.
type App struct {
	cfg   Config
	clock ClockFunc
	bus   Bus
	port  HIDPort
	led   LEDDriver
	sink  EventSink

	// Link-state indicator
	link        LinkState
	blinkMS     uint32
	blinkRef    uint32
	ledOn       bool
	lockLED     bool // host holds caps lock: LED forced on, blink off
	wakeAllowed bool // host permits remote wakeup while suspended

	// Script sequencer
	seq      SequenceState
	seqStart uint32
	cursor   int
	tickRef  uint32

	started bool
}

// New creates an App with the given script. Hardware is registered
// afterwards with SetClock, SetBus, SetPort and SetLED.
func New(cfg Config) *App {
	applyDefaults(&cfg)
	return &App{
		cfg:     cfg,
		led:     nullLED{},
		blinkMS: BlinkNotMounted,
	}
}

// SetClock registers the millisecond tick source.
func (a *App) SetClock(clock ClockFunc) {
	a.clock = clock
}

// SetBus registers the USB link status source.
func (a *App) SetBus(bus Bus) {
	a.bus = bus
}

// SetPort registers the HID report transport.
func (a *App) SetPort(port HIDPort) {
	a.port = port
}

// SetLED registers the link-state indicator output.
func (a *App) SetLED(led LEDDriver) {
	a.led = led
}

// SetEventSink registers the debug event hook.
func (a *App) SetEventSink(sink EventSink) {
	a.sink = sink
}

// Link returns the current connection state.
func (a *App) Link() LinkState {
	return a.link
}

// Sequence returns the sequencer's current state.
func (a *App) Sequence() SequenceState {
	return a.seq
}

// BlinkInterval returns the indicator cadence in milliseconds
// (BlinkDisabled while the caps lock override holds the LED on).
func (a *App) BlinkInterval() uint32 {
	return a.blinkMS
}

// Poll runs one cooperative iteration: indicator first, then sequencer.
// Call it from the main loop after letting the USB stack make progress.
func (a *App) Poll() {
	if a.clock == nil {
		panic("core: no clock registered")
	}
	now := a.clock()
	if !a.started {
		// The clock's epoch is arbitrary; anchor both cadences to the
		// first observed time instead of assuming it starts near zero.
		a.started = true
		a.blinkRef = now
		a.tickRef = now
	}
	a.blinkTick(now)
	a.seqTick(now)
}

// Run is the process-wide driver loop: stack task, then Poll, forever.
func (a *App) Run(stackTask func()) {
	for {
		if stackTask != nil {
			stackTask()
		}
		a.Poll()
	}
}

func (a *App) emit(kind protocol.EventKind, payload ...byte) {
	if a.sink != nil {
		a.sink(kind, payload...)
	}
}
