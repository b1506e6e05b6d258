package core

import (
	"gohid/descriptor"
	"gohid/protocol"
)

// HID report types as they appear in SET_REPORT / GET_REPORT requests.
const (
	ReportTypeInput   = 1
	ReportTypeOutput  = 2
	ReportTypeFeature = 3
)

// The On* methods are the device stack's notification surface. Targets
// wire them to the stack's callbacks; they must run on the same
// execution context as Poll.

// OnMount is invoked when the host completes enumeration.
func (a *App) OnMount() {
	a.link = LinkMounted
	a.blinkMS = BlinkMounted
	a.emit(protocol.EventLinkState, byte(LinkMounted))
}

// OnUnmount is invoked when the device is detached.
func (a *App) OnUnmount() {
	a.link = LinkNotMounted
	a.blinkMS = BlinkNotMounted
	a.emit(protocol.EventLinkState, byte(LinkNotMounted))
}

// OnSuspend is invoked when the bus suspends. remoteWakeupEnabled says
// whether the host permits the device to request a resume.
func (a *App) OnSuspend(remoteWakeupEnabled bool) {
	a.wakeAllowed = remoteWakeupEnabled
	a.link = LinkSuspended
	a.blinkMS = BlinkSuspended
	a.emit(protocol.EventLinkState, byte(LinkSuspended))
}

// OnResume is invoked when the bus resumes.
func (a *App) OnResume() {
	if a.bus != nil && a.bus.Mounted() {
		a.link = LinkMounted
	} else {
		a.link = LinkNotMounted
	}
	a.blinkMS = blinkFor(a.link)
	a.emit(protocol.EventLinkState, byte(a.link))
}

// OnSetReport handles a host SET_REPORT request or OUT endpoint data.
// Only the keyboard LED output report is interesting: the caps lock bit
// overrides the blink pattern and holds the LED on. Short or unrelated
// payloads are ignored.
func (a *App) OnSetReport(reportType, reportID byte, data []byte) {
	if reportType != ReportTypeOutput || reportID != descriptor.ReportIDKeyboard {
		return
	}
	if len(data) < 1 {
		return
	}

	if data[0]&LEDCapsLock != 0 {
		a.lockLED = true
		a.blinkMS = BlinkDisabled
		a.ledOn = true
		a.led.Set(true)
		a.emit(protocol.EventLockLED, 1)
	} else if a.lockLED {
		a.lockLED = false
		a.ledOn = false
		a.led.Set(false)
		a.blinkMS = blinkFor(a.link)
		a.emit(protocol.EventLockLED, 0)
	}
}

// OnGetReport handles a host GET_REPORT request. The demo has no
// report state worth answering with; returning 0 stalls the request.
func (a *App) OnGetReport(reportType, reportID byte, buf []byte) int {
	return 0
}

// OnReportComplete is invoked after a report reaches the host. The
// sequencer keys off Ready instead, so there is nothing to do.
func (a *App) OnReportComplete(report []byte) {
}
