// Package sim runs the firmware logic on a workstation against a
// scripted fake host: no hardware, simulated time, and a capture of
// every HID report the device would have sent. Useful both as a demo
// and as an end-to-end harness.
package sim

import (
	"bytes"

	"gohid/core"
	"gohid/descriptor"
	"gohid/host/monitor"
	"gohid/protocol"
)

// Report is one captured HID report with its simulated send time.
type Report struct {
	Time     uint32
	Keyboard bool

	// Keyboard fields
	Modifiers byte
	Keys      [6]byte

	// Mouse fields
	Buttons byte
	DX, DY  int8
	Wheel   int8
}

// Simulator owns a core.App and plays the host's role: it is the bus,
// the HID transport and the LED, all backed by plain fields.
type Simulator struct {
	App *core.App

	now       uint32
	mounted   bool
	suspended bool

	// Wakeups counts remote wakeup requests from the device.
	Wakeups int

	// Reports are all HID reports accepted so far, in order.
	Reports []Report

	// LEDOn mirrors the indicator output.
	LEDOn bool

	stream bytes.Buffer
}

// New builds a simulator around a fresh App.
func New(cfg Config) *Simulator {
	applyDefaults(&cfg)

	s := &Simulator{}
	app := core.New(cfg.coreConfig())
	app.SetClock(func() uint32 { return s.now })
	app.SetBus(s)
	app.SetPort(s)
	app.SetLED(s)
	app.SetEventSink(func(kind protocol.EventKind, payload ...byte) {
		frame, err := protocol.Encode(kind, payload)
		if err != nil {
			return
		}
		s.stream.Write(frame)
	})

	// Leading sync so a decoder attaching at byte 0 locks on at once.
	s.stream.WriteByte(protocol.FrameSync)
	s.App = app
	return s
}

// Bus interface.

func (s *Simulator) Mounted() bool   { return s.mounted }
func (s *Simulator) Suspended() bool { return s.suspended }
func (s *Simulator) RemoteWakeup()   { s.Wakeups++ }

// HIDPort interface. The simulated endpoint is always free.

func (s *Simulator) Ready() bool { return true }

func (s *Simulator) SendKeyboard(id, modifiers byte, keys [6]byte) bool {
	s.Reports = append(s.Reports, Report{
		Time:      s.now,
		Keyboard:  true,
		Modifiers: modifiers,
		Keys:      keys,
	})
	return true
}

func (s *Simulator) SendMouse(id, buttons byte, dx, dy, wheel int8) bool {
	s.Reports = append(s.Reports, Report{
		Time:    s.now,
		Buttons: buttons,
		DX:      dx,
		DY:      dy,
		Wheel:   wheel,
	})
	return true
}

// LEDDriver interface.

func (s *Simulator) Set(on bool) { s.LEDOn = on }

// Host-side actions.

// Plug attaches the device: enumeration completes immediately.
func (s *Simulator) Plug() {
	s.mounted = true
	s.App.OnMount()
}

// Unplug detaches the device.
func (s *Simulator) Unplug() {
	s.mounted = false
	s.App.OnUnmount()
}

// Suspend puts the bus to sleep, optionally allowing remote wakeup.
func (s *Simulator) Suspend(allowWakeup bool) {
	s.suspended = true
	s.App.OnSuspend(allowWakeup)
}

// Resume wakes the bus.
func (s *Simulator) Resume() {
	s.suspended = false
	s.App.OnResume()
}

// SetCapsLock sends the keyboard LED output report the way a host would.
func (s *Simulator) SetCapsLock(on bool) {
	var leds byte
	if on {
		leds = core.LEDCapsLock
	}
	s.App.OnSetReport(core.ReportTypeOutput, descriptor.ReportIDKeyboard, []byte{leds})
}

// RunFor advances simulated time, polling the app once per millisecond.
func (s *Simulator) RunFor(ms uint32) {
	for end := s.now + ms; s.now < end; {
		s.now++
		s.App.Poll()
	}
}

// Stream returns the frames the device wrote to its debug port.
func (s *Simulator) Stream() []byte {
	return s.stream.Bytes()
}

// Typed reconstructs the text from the captured keyboard reports.
func (s *Simulator) Typed() string {
	var out []byte
	for _, r := range s.Reports {
		if !r.Keyboard || r.Keys[0] == core.KeyNone {
			continue
		}
		if c := monitor.KeyToChar(r.Keys[0], r.Modifiers); c != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
