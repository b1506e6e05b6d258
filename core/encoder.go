package core

import (
	"gohid/descriptor"
	"gohid/protocol"
)

// CharToKey maps a printable character to its keycode and modifier mask
// on a US layout. Lowercase letters map directly, uppercase letters and
// '!' carry left shift, and anything unmapped becomes KeyNone so the
// script keeps moving instead of failing on odd input.
func CharToKey(c byte) (key, modifiers byte) {
	switch {
	case c >= 'a' && c <= 'z':
		return KeyA + (c - 'a'), 0
	case c >= 'A' && c <= 'Z':
		return KeyA + (c - 'A'), ModLeftShift
	case c == ' ':
		return KeySpace, 0
	case c == '!':
		return Key1, ModLeftShift
	}
	return KeyNone, 0
}

// pressKey sends a keyboard report with a single key down in slot 0.
func (a *App) pressKey(modifiers, key byte) bool {
	if !a.port.Ready() {
		return false
	}
	var keys [6]byte
	keys[0] = key
	if !a.port.SendKeyboard(descriptor.ReportIDKeyboard, modifiers, keys) {
		return false
	}
	a.emit(protocol.EventKeyboard, modifiers, key)
	return true
}

// releaseKeys sends the all-clear keyboard report. It is flow-controlled
// like every other send: one Ready gate policy for the whole transport.
func (a *App) releaseKeys() bool {
	if !a.port.Ready() {
		return false
	}
	var keys [6]byte
	if !a.port.SendKeyboard(descriptor.ReportIDKeyboard, 0, keys) {
		return false
	}
	a.emit(protocol.EventKeyboard, 0, KeyNone)
	return true
}

// mouseMove sends a relative motion report with no buttons pressed.
func (a *App) mouseMove(dx, dy int8) bool {
	if !a.port.Ready() {
		return false
	}
	if !a.port.SendMouse(descriptor.ReportIDMouse, 0, dx, dy, 0) {
		return false
	}
	a.emit(protocol.EventMouse, 0, byte(dx), byte(dy), 0)
	return true
}

// mouseButtons sends a button state change with no motion. A zero mask
// releases all buttons.
func (a *App) mouseButtons(buttons byte) bool {
	if !a.port.Ready() {
		return false
	}
	if !a.port.SendMouse(descriptor.ReportIDMouse, buttons, 0, 0, 0) {
		return false
	}
	a.emit(protocol.EventMouse, buttons, 0, 0, 0)
	return true
}
