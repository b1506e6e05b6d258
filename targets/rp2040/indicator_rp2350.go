//go:build rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"gohid/core"
)

// newIndicator picks the link-state indicator output. On RP2350 the
// status pixel uses the bit-banged ws2812 driver.
func newIndicator(app *core.App) core.LEDDriver {
	if useStatusPixel {
		return NewStatusPixel(statusPixelPin, app)
	}
	return NewBoardLED()
}

// StatusPixel mirrors the blink pattern on a WS2812, colored by link
// state: red not mounted, green mounted, amber suspended.
type StatusPixel struct {
	dev ws2812.Device
	app *core.App
}

func NewStatusPixel(pin machine.Pin, app *core.App) *StatusPixel {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &StatusPixel{dev: ws2812.NewWS2812(pin), app: app}
}

func (s *StatusPixel) Set(on bool) {
	c := color.RGBA{}
	if on {
		c = linkColor(s.app)
	}
	s.dev.WriteColors([]color.RGBA{c})
}
