package protocol

import (
	"bytes"
	"testing"
)

func TestEncodeFrameLayout(t *testing.T) {
	frame, err := Encode(EventKeyboard, []byte{0x02, 0x0B})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if int(frame[0]) != len(frame) {
		t.Errorf("length byte %d, frame is %d bytes", frame[0], len(frame))
	}
	if EventKind(frame[1]) != EventKeyboard {
		t.Errorf("kind byte %d, want %d", frame[1], EventKeyboard)
	}
	if frame[len(frame)-1] != FrameSync {
		t.Errorf("trailer byte 0x%02X, want sync 0x%02X", frame[len(frame)-1], FrameSync)
	}

	wantCRC := CRC16(frame[:len(frame)-FrameTrailerSize])
	gotCRC := uint16(frame[len(frame)-3])<<8 | uint16(frame[len(frame)-2])
	if gotCRC != wantCRC {
		t.Errorf("frame CRC 0x%04X, want 0x%04X", gotCRC, wantCRC)
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	_, err := Encode(EventHello, make([]byte, FrameLengthMax))
	if err == nil {
		t.Error("expected error for oversized payload")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	events := []struct {
		kind    EventKind
		payload []byte
	}{
		{EventLinkState, []byte{1}},
		{EventSequence, []byte{0, 1}},
		{EventMouse, []byte{0x01, 0x00, 0xEC, 0x00}},
		{EventWakeup, nil},
	}

	var stream []byte
	// Leading sync so a fresh decoder locks on immediately.
	stream = append(stream, FrameSync)
	for _, ev := range events {
		frame, err := Encode(ev.kind, ev.payload)
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", ev.kind, err)
		}
		stream = append(stream, frame...)
	}

	// Feed one byte at a time to exercise partial-frame buffering.
	dec := NewDecoder()
	var got []Event
	for _, b := range stream {
		got = append(got, dec.Feed([]byte{b})...)
	}

	if len(got) != len(events) {
		t.Fatalf("decoded %d events, want %d", len(got), len(events))
	}
	for i, ev := range events {
		if got[i].Kind != ev.kind {
			t.Errorf("event %d: kind %d, want %d", i, got[i].Kind, ev.kind)
		}
		want := ev.payload
		if want == nil {
			want = []byte{}
		}
		if !bytes.Equal(got[i].Data, want) {
			t.Errorf("event %d: payload % X, want % X", i, got[i].Data, want)
		}
	}
}

func TestDecodeResyncAfterGarbage(t *testing.T) {
	frame, err := Encode(EventLinkState, []byte{2})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	stream := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	stream = append(stream, FrameSync)
	stream = append(stream, frame...)

	dec := NewDecoder()
	got := dec.Feed(stream)
	if len(got) != 1 {
		t.Fatalf("decoded %d events after garbage, want 1", len(got))
	}
	if got[0].Kind != EventLinkState || got[0].Data[0] != 2 {
		t.Errorf("decoded wrong event: %+v", got[0])
	}
}

func TestDecodeDropsCorruptFrame(t *testing.T) {
	good, err := Encode(EventWakeup, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	bad := make([]byte, len(good))
	copy(bad, good)
	bad[2] ^= 0xFF // corrupt the CRC

	var stream []byte
	stream = append(stream, FrameSync)
	stream = append(stream, bad...)
	stream = append(stream, good...)

	dec := NewDecoder()
	got := dec.Feed(stream)
	if len(got) != 1 {
		t.Fatalf("decoded %d events, want 1 (corrupt frame dropped)", len(got))
	}
	if got[0].Kind != EventWakeup {
		t.Errorf("surviving event kind %d, want %d", got[0].Kind, EventWakeup)
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x05, 0x02, 0x01}
	if CRC16(data) != CRC16(data) {
		t.Error("CRC16 not deterministic")
	}
	if CRC16([]byte{}) != 0xFFFF {
		t.Errorf("CRC16 of empty input = 0x%04X, want 0xFFFF", CRC16([]byte{}))
	}
}
