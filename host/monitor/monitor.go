// Package monitor renders the firmware's framed event stream as
// human-readable log lines and reconstructs the text the device typed.
package monitor

import (
	"fmt"
	"io"
	"time"

	"gohid/core"
	"gohid/protocol"
)

// Monitor consumes raw serial bytes and writes one line per event.
type Monitor struct {
	dec   *protocol.Decoder
	out   io.Writer
	typed []byte
}

// New returns a Monitor writing rendered events to out.
func New(out io.Writer) *Monitor {
	return &Monitor{
		dec: protocol.NewDecoder(),
		out: out,
	}
}

// Consume feeds raw bytes from the device and renders any completed
// events they carry.
func (m *Monitor) Consume(data []byte) {
	for _, ev := range m.dec.Feed(data) {
		m.render(ev)
	}
}

// Typed returns the text reconstructed from keyboard press events.
func (m *Monitor) Typed() string {
	return string(m.typed)
}

// Follow reads from r until EOF, consuming everything. A serial port
// with a read timeout returns (0, nil) when idle; Follow sleeps briefly
// on those so an idle device does not busy-spin the loop.
func (m *Monitor) Follow(r io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			m.Consume(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read device stream: %w", err)
		}
		if n == 0 {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (m *Monitor) render(ev protocol.Event) {
	switch ev.Kind {
	case protocol.EventHello:
		fmt.Fprintf(m.out, "hello: stream version %s\n", ev.Data)

	case protocol.EventLinkState:
		if len(ev.Data) < 1 {
			return
		}
		fmt.Fprintf(m.out, "link: %s\n", core.LinkState(ev.Data[0]))

	case protocol.EventSequence:
		if len(ev.Data) < 2 {
			return
		}
		fmt.Fprintf(m.out, "sequence: %s -> %s\n",
			core.SequenceState(ev.Data[0]), core.SequenceState(ev.Data[1]))

	case protocol.EventKeyboard:
		if len(ev.Data) < 2 {
			return
		}
		modifiers, key := ev.Data[0], ev.Data[1]
		if key == core.KeyNone && modifiers == 0 {
			fmt.Fprintf(m.out, "keyboard: release\n")
			return
		}
		if c := KeyToChar(key, modifiers); c != 0 {
			m.typed = append(m.typed, c)
			fmt.Fprintf(m.out, "keyboard: press %q (key=0x%02X mod=0x%02X)\n", c, key, modifiers)
		} else {
			fmt.Fprintf(m.out, "keyboard: press key=0x%02X mod=0x%02X\n", key, modifiers)
		}

	case protocol.EventMouse:
		if len(ev.Data) < 4 {
			return
		}
		buttons := ev.Data[0]
		dx, dy, wheel := int8(ev.Data[1]), int8(ev.Data[2]), int8(ev.Data[3])
		if buttons != 0 {
			fmt.Fprintf(m.out, "mouse: buttons=0x%02X\n", buttons)
		} else if dx != 0 || dy != 0 || wheel != 0 {
			fmt.Fprintf(m.out, "mouse: move (%d,%d) wheel=%d\n", dx, dy, wheel)
		} else {
			fmt.Fprintf(m.out, "mouse: release\n")
		}

	case protocol.EventWakeup:
		fmt.Fprintf(m.out, "bus: remote wakeup requested\n")

	case protocol.EventLockLED:
		if len(ev.Data) < 1 {
			return
		}
		state := "off"
		if ev.Data[0] != 0 {
			state = "on"
		}
		fmt.Fprintf(m.out, "caps lock: %s\n", state)

	default:
		fmt.Fprintf(m.out, "unknown event kind=%d payload=% X\n", ev.Kind, ev.Data)
	}
}

// KeyToChar inverts the firmware's character mapping for display.
// Returns 0 for keycodes outside the script's alphabet.
func KeyToChar(key, modifiers byte) byte {
	shift := modifiers&core.ModLeftShift != 0
	switch {
	case key >= core.KeyA && key < core.KeyA+26:
		if shift {
			return 'A' + (key - core.KeyA)
		}
		return 'a' + (key - core.KeyA)
	case key == core.KeySpace:
		return ' '
	case key == core.Key1 && shift:
		return '!'
	}
	return 0
}
