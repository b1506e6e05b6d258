//go:build rp2040

package main

import "gohid/core"

// newIndicator picks the link-state indicator output. On RP2040 the
// status pixel is driven by a PIO state machine, which generates the
// WS2812 waveform in hardware and costs the poll loop one FIFO write.
func newIndicator(app *core.App) core.LEDDriver {
	if useStatusPixel {
		if pixel, err := NewPIOPixel(statusPixelPin, app); err == nil {
			return pixel
		}
		// PIO unavailable (program space or state machines exhausted):
		// fall back to the board LED rather than losing the indicator.
	}
	return NewBoardLED()
}
