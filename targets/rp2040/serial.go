//go:build rp2040 || rp2350

package main

import (
	"machine"

	"gohid/protocol"
)

// InitSerial brings up the USB CDC port used for the debug event
// stream. On RP2040, machine.Serial is USB CDC, not a UART.
func InitSerial() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}

	// A leading sync byte lets a freshly attached reader lock on before
	// the first full frame, then a hello so it knows who it found.
	machine.Serial.WriteByte(protocol.FrameSync)
	if frame, err := protocol.Encode(protocol.EventHello, []byte(protocol.Version)); err == nil {
		machine.Serial.Write(frame)
	}
}

// SerialSink encodes one event frame straight onto the CDC port. A full
// or detached port drops bytes; the stream is diagnostics, not data.
func SerialSink(kind protocol.EventKind, payload ...byte) {
	frame, err := protocol.Encode(kind, payload)
	if err != nil {
		return
	}
	machine.Serial.Write(frame)
}
