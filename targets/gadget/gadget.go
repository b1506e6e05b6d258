//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gohid/core"
	"gohid/descriptor"
)

// GadgetPort drives a Linux USB gadget HID function: reports are
// written to the hidg character device, link state is read from the
// UDC's sysfs state file. Assumes the gadget was configured (configfs)
// with the report descriptor from the descriptor package.
type GadgetPort struct {
	app *core.App
	f   *os.File

	udcState  string // .../state path, empty if no UDC found
	lastCheck time.Time
	mounted   bool
	suspended bool

	rxBuf [16]byte
}

// NewGadgetPort opens the hidg device and locates the UDC state file.
func NewGadgetPort(app *core.App, device string) (*GadgetPort, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open gadget device %s: %w", device, err)
	}

	p := &GadgetPort{app: app, f: f}

	// First registered UDC wins; without one, assume always mounted.
	matches, _ := filepath.Glob("/sys/class/udc/*/state")
	if len(matches) > 0 {
		p.udcState = matches[0]
	} else {
		p.mounted = true
	}
	return p, nil
}

// Close releases the hidg device.
func (p *GadgetPort) Close() error {
	return p.f.Close()
}

// Task polls the UDC state and drains pending output reports. Called
// once per loop iteration from the same context as App.Poll.
func (p *GadgetPort) Task() {
	p.pollState()
	p.pollOutputReport()
}

func (p *GadgetPort) pollState() {
	if p.udcState == "" || time.Since(p.lastCheck) < 100*time.Millisecond {
		return
	}
	p.lastCheck = time.Now()

	data, err := os.ReadFile(p.udcState)
	if err != nil {
		return
	}
	state := strings.TrimSpace(string(data))

	mounted := state == "configured"
	suspended := state == "suspended"

	switch {
	case suspended && !p.suspended:
		p.suspended = true
		// The sysfs state does not carry the host's remote wakeup
		// grant; the UDC refuses the request itself if it was not
		// granted, so report it as allowed.
		p.app.OnSuspend(true)
	case !suspended && p.suspended:
		p.suspended = false
		p.app.OnResume()
	case mounted && !p.mounted:
		p.app.OnMount()
	case !mounted && p.mounted && !suspended:
		p.app.OnUnmount()
	}
	if !suspended {
		p.mounted = mounted
	}
}

// pollOutputReport does a non-blocking read of the hidg device; the
// host's LED output report arrives here, report ID first.
func (p *GadgetPort) pollOutputReport() {
	if err := p.f.SetReadDeadline(time.Now()); err != nil {
		return
	}
	n, err := p.f.Read(p.rxBuf[:])
	if err != nil || n < 2 {
		return
	}
	p.app.OnSetReport(core.ReportTypeOutput, p.rxBuf[0], p.rxBuf[1:n])
}

// Bus interface.

func (p *GadgetPort) Mounted() bool   { return p.mounted }
func (p *GadgetPort) Suspended() bool { return p.suspended }

// RemoteWakeup is a no-op: the gadget framework issues the bus signal
// itself when the function writes while suspended.
func (p *GadgetPort) RemoteWakeup() {}

// HIDPort interface. The hidg write blocks while the host is not
// reading, so a short deadline converts "endpoint busy" into a clean
// rejection the sequencer retries.

func (p *GadgetPort) Ready() bool {
	// hidg exposes no readiness query; writes carry the deadline.
	return true
}

func (p *GadgetPort) SendKeyboard(id, modifiers byte, keys [6]byte) bool {
	r := descriptor.KeyboardReport{Modifiers: modifiers, Keys: keys}
	return p.write(descriptor.Tagged(id, r.Bytes()))
}

func (p *GadgetPort) SendMouse(id, buttons byte, dx, dy, wheel int8) bool {
	r := descriptor.MouseReport{Buttons: buttons, X: dx, Y: dy, Wheel: wheel}
	return p.write(descriptor.Tagged(id, r.Bytes()))
}

func (p *GadgetPort) write(report []byte) bool {
	// Most writes complete well under 1ms when the host is listening.
	if err := p.f.SetWriteDeadline(time.Now().Add(5 * time.Millisecond)); err != nil {
		return false
	}
	_, err := p.f.Write(report)
	return err == nil
}
