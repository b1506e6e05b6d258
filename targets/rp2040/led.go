//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"gohid/core"
)

// Set useStatusPixel to drive a WS2812 status pixel instead of the
// plain board LED. The pixel blinks at the same cadence but colors
// itself by link state.
const (
	useStatusPixel = false
	statusPixelPin = machine.GPIO16
)

// BoardLED drives the plain on-board LED.
type BoardLED struct {
	pin machine.Pin
}

func NewBoardLED() *BoardLED {
	pin := machine.LED
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &BoardLED{pin: pin}
}

func (l *BoardLED) Set(on bool) {
	l.pin.Set(on)
}

// linkColor picks the pixel color for the current link state.
func linkColor(app *core.App) color.RGBA {
	switch app.Link() {
	case core.LinkMounted:
		return color.RGBA{G: 0x20}
	case core.LinkSuspended:
		return color.RGBA{R: 0x20, G: 0x10}
	}
	return color.RGBA{R: 0x20}
}
