// Package protocol implements the framed event stream the firmware emits
// over its CDC serial port so a host can observe the demo as it runs.
package protocol

// Version is the firmware/stream version reported in hello events.
const Version = "0.1.0"

// Frame layout constants. A frame is:
//
//	[length] [kind] [payload...] [crc16 hi] [crc16 lo] [sync]
//
// length counts the whole frame. The CRC covers everything before the
// trailer. The trailing sync byte lets a late-attaching reader find frame
// boundaries in mid-stream garbage.
const (
	FrameHeaderSize  = 2
	FrameTrailerSize = 3
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 64
	FrameSync        = 0x7E
)

// EventKind identifies what a frame describes.
type EventKind uint8

const (
	EventHello     EventKind = 1 // payload: version string
	EventLinkState EventKind = 2 // payload: link state byte
	EventSequence  EventKind = 3 // payload: from state, to state
	EventKeyboard  EventKind = 4 // payload: modifiers, keycode (slot 0)
	EventMouse     EventKind = 5 // payload: buttons, dx, dy, wheel
	EventWakeup    EventKind = 6 // payload: empty
	EventLockLED   EventKind = 7 // payload: 0 = off, 1 = on
)

// Event is one decoded frame.
type Event struct {
	Kind EventKind
	Data []byte
}
