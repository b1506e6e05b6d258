package core

// Keyboard modifier bits (USB HID boot protocol).
const (
	ModLeftCtrl   = 1 << 0
	ModLeftShift  = 1 << 1
	ModLeftAlt    = 1 << 2
	ModLeftGUI    = 1 << 3
	ModRightCtrl  = 1 << 4
	ModRightShift = 1 << 5
	ModRightAlt   = 1 << 6
	ModRightGUI   = 1 << 7
)

// Keyboard LED bits as reported by the host in the output report.
const (
	LEDNumLock    = 1 << 0
	LEDCapsLock   = 1 << 1
	LEDScrollLock = 1 << 2
	LEDCompose    = 1 << 3
	LEDKana       = 1 << 4
)

// Keycodes from the USB HID Usage Tables (Keyboard/Keypad page).
// Only the ones the demo script can produce, plus KeyNone for characters
// with no mapping.
const (
	KeyNone  = 0x00
	KeyA     = 0x04
	Key1     = 0x1E
	Key0     = 0x27
	KeySpace = 0x2C
)

// Mouse button bits.
const (
	MouseButtonLeft   = 1 << 0
	MouseButtonRight  = 1 << 1
	MouseButtonMiddle = 1 << 2
)
