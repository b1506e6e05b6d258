//go:build rp2040 || rp2350

package main

import (
	"machine"
	"machine/usb"
	"machine/usb/hid"

	"gohid/core"
	"gohid/descriptor"
)

// HID class request codes.
const (
	hidGetReport = 0x01
	hidSetReport = 0x09
	hidSetIdle   = 0x0A
)

// USBPort adapts the TinyGo USB HID device class to the core HAL. The
// Tx/Rx/Setup handlers run from the USB interrupt context; they only
// set flags and buffer bytes, and Task delivers everything to the app
// on the poll loop's context.
type USBPort struct {
	app *core.App

	waitTxc    bool // an IN transfer is in flight
	sawTraffic bool // host has issued a class request
	mounted    bool

	rxPending bool
	rxLen     int
	rxReport  [8]byte
}

// NewUSBPort registers the adapter as the USB HID handler.
func NewUSBPort(app *core.App) *USBPort {
	p := &USBPort{app: app}
	hid.SetHandler(p)
	return p
}

// Task runs on the poll loop: it surfaces interrupt-context flags to
// the app as proper callbacks.
func (p *USBPort) Task() {
	if p.sawTraffic && !p.mounted {
		p.mounted = true
		p.app.OnMount()
	}
	if p.rxPending {
		p.rxPending = false
		if p.rxLen > 1 {
			p.app.OnSetReport(core.ReportTypeOutput, p.rxReport[0], p.rxReport[1:p.rxLen])
		}
	}
}

// TxHandler is invoked when the IN endpoint completes a transfer.
func (p *USBPort) TxHandler() bool {
	p.waitTxc = false
	p.app.OnReportComplete(nil)
	return false
}

// RxHandler receives interrupt OUT data. For this interface that is the
// keyboard LED output report, prefixed with its report ID.
func (p *USBPort) RxHandler(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	p.rxLen = copy(p.rxReport[:], b)
	p.rxPending = true
	return true
}

// SetupHandler fields class requests on the control endpoint. Seeing
// one means enumeration got far enough for the host to talk to the
// interface, which is the closest thing this stack exposes to a mount
// notification.
func (p *USBPort) SetupHandler(setup usb.Setup) bool {
	p.sawTraffic = true

	switch setup.BRequest {
	case hidGetReport:
		// No report state worth answering with.
		machine.SendZlp()
		return true
	case hidSetIdle:
		machine.SendZlp()
		return true
	}
	return false
}

// Bus interface.

func (p *USBPort) Mounted() bool { return p.mounted }

// Suspended always reports false: the TinyGo device stack does not
// surface bus suspend to class handlers. The suspend path still runs
// everywhere the core is tested off-hardware.
func (p *USBPort) Suspended() bool { return false }

func (p *USBPort) RemoteWakeup() {}

// HIDPort interface.

func (p *USBPort) Ready() bool { return !p.waitTxc }

func (p *USBPort) SendKeyboard(id, modifiers byte, keys [6]byte) bool {
	if p.waitTxc {
		return false
	}
	r := descriptor.KeyboardReport{Modifiers: modifiers, Keys: keys}
	p.send(descriptor.Tagged(id, r.Bytes()))
	return true
}

func (p *USBPort) SendMouse(id, buttons byte, dx, dy, wheel int8) bool {
	if p.waitTxc {
		return false
	}
	r := descriptor.MouseReport{Buttons: buttons, X: dx, Y: dy, Wheel: wheel}
	p.send(descriptor.Tagged(id, r.Bytes()))
	return true
}

func (p *USBPort) send(b []byte) {
	p.waitTxc = true
	hid.SendUSBPacket(b)
}
