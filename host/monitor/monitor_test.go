package monitor

import (
	"io"
	"strings"
	"testing"

	"gohid/core"
	"gohid/host/serial"
	"gohid/protocol"
)

func frame(t *testing.T, kind protocol.EventKind, payload ...byte) []byte {
	t.Helper()
	f, err := protocol.Encode(kind, payload)
	if err != nil {
		t.Fatalf("Encode(%d) failed: %v", kind, err)
	}
	return f
}

func TestMonitorRendersEvents(t *testing.T) {
	var stream []byte
	stream = append(stream, protocol.FrameSync)
	stream = append(stream, frame(t, protocol.EventLinkState, byte(core.LinkMounted))...)
	stream = append(stream, frame(t, protocol.EventSequence, byte(core.StateIdle), byte(core.StateWaitInit))...)
	stream = append(stream, frame(t, protocol.EventMouse, 0, 0, 0xEC, 0)...)
	stream = append(stream, frame(t, protocol.EventWakeup)...)
	stream = append(stream, frame(t, protocol.EventLockLED, 1)...)

	var out strings.Builder
	m := New(&out)
	m.Consume(stream)

	got := out.String()
	for _, want := range []string{
		"link: mounted",
		"sequence: idle -> wait-init",
		"mouse: move (0,-20)",
		"remote wakeup",
		"caps lock: on",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMonitorReconstructsTypedText(t *testing.T) {
	text := "Hello World!"
	var stream []byte
	stream = append(stream, protocol.FrameSync)
	for i := 0; i < len(text); i++ {
		key, mods := core.CharToKey(text[i])
		stream = append(stream, frame(t, protocol.EventKeyboard, mods, key)...)
		stream = append(stream, frame(t, protocol.EventKeyboard, 0, core.KeyNone)...)
	}

	var out strings.Builder
	m := New(&out)
	// Chunked delivery: frames arrive split across reads.
	for i := 0; i < len(stream); i += 7 {
		end := i + 7
		if end > len(stream) {
			end = len(stream)
		}
		m.Consume(stream[i:end])
	}

	if m.Typed() != text {
		t.Errorf("reconstructed %q, want %q", m.Typed(), text)
	}
}

// idleThenReader returns (0, nil) a few times before yielding its data,
// the way a timeout-configured port behaves while the device is quiet.
type idleThenReader struct {
	idle int
	data []byte
}

func (r *idleThenReader) Read(b []byte) (int, error) {
	if r.idle > 0 {
		r.idle--
		return 0, nil
	}
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestFollowToleratesIdleReads(t *testing.T) {
	stream := append([]byte{protocol.FrameSync},
		frame(t, protocol.EventLinkState, byte(core.LinkMounted))...)

	var out strings.Builder
	m := New(&out)
	if err := m.Follow(&idleThenReader{idle: 3, data: stream}); err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}
	if !strings.Contains(out.String(), "link: mounted") {
		t.Errorf("Follow dropped the event behind idle reads: %q", out.String())
	}
}

func TestFollowReadsToEOF(t *testing.T) {
	port := serial.NewMockPort()
	port.QueueRead(append([]byte{protocol.FrameSync},
		frame(t, protocol.EventLinkState, byte(core.LinkSuspended))...))
	port.Close()

	var out strings.Builder
	m := New(&out)
	if err := m.Follow(port); err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}
	if !strings.Contains(out.String(), "link: suspended") {
		t.Errorf("Follow did not render queued event: %q", out.String())
	}
}
