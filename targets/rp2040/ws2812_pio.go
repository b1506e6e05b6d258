//go:build rp2040

package main

// PIO-driven WS2812 output: the state machine shifts out 24-bit GRB
// words with the 800kHz waveform timed entirely in hardware, so the
// poll loop never bit-bangs.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"gohid/core"
)

// buildWS2812Program assembles the classic one-wire NRZ program.
// Cycle budget per bit at 8MHz: 3 low-or-high lead-in, 2 data window,
// 5 tail. A '1' bit holds the line high through the data window, a '0'
// drops it.
func buildWS2812Program() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 1}
	return []uint16{
		// bitloop:
		asm.Out(rp2pio.OutDestX, 1).Side(0).Delay(2).Encode(), // 0: out x, 1      side 0 [2]
		asm.Jmp(3, rp2pio.JmpXZero).Side(1).Delay(1).Encode(), // 1: jmp !x, 3     side 1 [1]
		asm.Jmp(0, rp2pio.JmpAlways).Side(1).Delay(4).Encode(), // 2: jmp bitloop  side 1 [4]
		asm.Jmp(0, rp2pio.JmpAlways).Side(0).Delay(4).Encode(), // 3: jmp bitloop  side 0 [4]
	}
}

const ws2812PIOOrigin = 0 // jumps are absolute, load at offset 0

// PIOPixel drives one WS2812 through PIO0.
type PIOPixel struct {
	pio *rp2pio.PIO
	sm  rp2pio.StateMachine
	app *core.App
}

// NewPIOPixel claims a state machine and loads the waveform program.
func NewPIOPixel(pin machine.Pin, app *core.App) (*PIOPixel, error) {
	p := &PIOPixel{
		pio: rp2pio.PIO0,
		app: app,
	}
	p.sm = p.pio.StateMachine(0)
	p.sm.TryClaim()

	program := buildWS2812Program()
	offset, err := p.pio.AddProgram(program, ws2812PIOOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: p.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSidesetPins(pin)
	// Shift left, autopull at 24 bits: one FIFO word per pixel.
	cfg.SetOutShift(false, true, 24)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// 125MHz / 15.625 = 8MHz: 10 PIO cycles per 1.25us bit.
	cfg.SetClkDivIntFrac(15, 160)

	p.sm.Init(offset, cfg)
	p.sm.SetPindirsConsecutive(pin, 1, true)
	p.sm.SetEnabled(true)

	return p, nil
}

// Set pushes one pixel update. A full FIFO means updates are already
// outpacing the wire; dropping this one is fine for an indicator.
func (p *PIOPixel) Set(on bool) {
	var grb uint32
	if on {
		c := linkColor(p.app)
		grb = uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.B)
	}
	if p.sm.IsTxFIFOFull() {
		return
	}
	p.sm.TxPut(grb << 8)
}
