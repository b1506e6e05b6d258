// Package descriptor holds the HID report descriptor for the composite
// keyboard+mouse interface and the wire layout of its input reports.
// The byte layouts here are a boundary contract with the host: they must
// match what the report descriptor declares, field for field.
package descriptor

// Report IDs for the composite interface. Every input report is prefixed
// with its ID so the host can tell keyboard and mouse traffic apart.
const (
	ReportIDKeyboard = 1
	ReportIDMouse    = 2
)

// Wire sizes of the report payloads, excluding the leading report ID.
const (
	KeyboardReportLen = 8 // modifiers, reserved, 6 keycodes
	MouseReportLen    = 4 // buttons, x, y, wheel
)

// Composite is the HID report descriptor exposed by the device: a boot
// keyboard collection (report ID 1, with LED output report) followed by a
// relative mouse collection (report ID 2).
var Composite = []byte{
	// Keyboard
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x85, ReportIDKeyboard, //   Report ID (1)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0xE0, //   Usage Minimum (Left Control)
	0x29, 0xE7, //   Usage Maximum (Right GUI)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute) - modifier byte
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input (Constant) - reserved byte
	0x95, 0x05, //   Report Count (5)
	0x75, 0x01, //   Report Size (1)
	0x05, 0x08, //   Usage Page (LEDs)
	0x19, 0x01, //   Usage Minimum (Num Lock)
	0x29, 0x05, //   Usage Maximum (Kana)
	0x91, 0x02, //   Output (Data, Variable, Absolute) - LED bits
	0x95, 0x01, //   Report Count (1)
	0x75, 0x03, //   Report Size (3)
	0x91, 0x01, //   Output (Constant) - LED padding
	0x95, 0x06, //   Report Count (6)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x65, //   Logical Maximum (101)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0x00, //   Usage Minimum (0)
	0x29, 0x65, //   Usage Maximum (101)
	0x81, 0x00, //   Input (Data, Array) - 6-key rollover
	0xC0, // End Collection

	// Mouse
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x02, // Usage (Mouse)
	0xA1, 0x01, // Collection (Application)
	0x85, ReportIDMouse, //   Report ID (2)
	0x09, 0x01, //   Usage (Pointer)
	0xA1, 0x00, //   Collection (Physical)
	0x05, 0x09, //     Usage Page (Buttons)
	0x19, 0x01, //     Usage Minimum (1)
	0x29, 0x05, //     Usage Maximum (5)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x95, 0x05, //     Report Count (5)
	0x75, 0x01, //     Report Size (1)
	0x81, 0x02, //     Input (Data, Variable, Absolute) - button bits
	0x95, 0x01, //     Report Count (1)
	0x75, 0x03, //     Report Size (3)
	0x81, 0x01, //     Input (Constant) - button padding
	0x05, 0x01, //     Usage Page (Generic Desktop)
	0x09, 0x30, //     Usage (X)
	0x09, 0x31, //     Usage (Y)
	0x09, 0x38, //     Usage (Wheel)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x03, //     Report Count (3)
	0x81, 0x06, //     Input (Data, Variable, Relative)
	0xC0, //   End Collection
	0xC0, // End Collection
}

// KeyboardReport is the input report for the keyboard collection.
type KeyboardReport struct {
	Modifiers byte
	Keys      [6]byte
}

// Bytes returns the 8-byte wire payload (without the report ID prefix).
func (r KeyboardReport) Bytes() []byte {
	b := make([]byte, KeyboardReportLen)
	b[0] = r.Modifiers
	// b[1] is the reserved byte, always zero
	copy(b[2:], r.Keys[:])
	return b
}

// MouseReport is the relative input report for the mouse collection.
type MouseReport struct {
	Buttons byte
	X       int8
	Y       int8
	Wheel   int8
}

// Bytes returns the 4-byte wire payload (without the report ID prefix).
func (r MouseReport) Bytes() []byte {
	return []byte{r.Buttons, byte(r.X), byte(r.Y), byte(r.Wheel)}
}

// Tagged prepends the report ID to a report payload, producing the bytes
// that actually travel over the interrupt IN endpoint.
func Tagged(id byte, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+1)
	out = append(out, id)
	return append(out, payload...)
}
