package core

import (
	"testing"

	"gohid/descriptor"
	"gohid/protocol"
)

type capturedEvent struct {
	kind protocol.EventKind
	data []byte
}

func captureEvents(a *App) *[]capturedEvent {
	var events []capturedEvent
	a.SetEventSink(func(kind protocol.EventKind, payload ...byte) {
		data := make([]byte, len(payload))
		copy(data, payload)
		events = append(events, capturedEvent{kind: kind, data: data})
	})
	return &events
}

func TestLinkStateEvents(t *testing.T) {
	r := newTestRig(DefaultConfig())
	events := captureEvents(r.app)

	r.app.OnMount()
	r.app.OnSuspend(true)
	r.app.OnResume() // bus fake still reports unmounted
	r.app.OnUnmount()

	want := []LinkState{LinkMounted, LinkSuspended, LinkNotMounted, LinkNotMounted}
	if len(*events) != len(want) {
		t.Fatalf("%d link events, want %d", len(*events), len(want))
	}
	for i, ev := range *events {
		if ev.kind != protocol.EventLinkState {
			t.Errorf("event %d kind %d, want link-state", i, ev.kind)
		}
		if LinkState(ev.data[0]) != want[i] {
			t.Errorf("event %d state %v, want %v", i, LinkState(ev.data[0]), want[i])
		}
	}
}

func TestResumeRestoresMountedState(t *testing.T) {
	r := newTestRig(DefaultConfig())
	r.mount()
	r.app.OnSuspend(true)
	r.app.OnResume()

	if r.app.Link() != LinkMounted {
		t.Errorf("link %v after resume while mounted, want %v", r.app.Link(), LinkMounted)
	}
	if r.app.BlinkInterval() != BlinkMounted {
		t.Errorf("blink %d after resume, want %d", r.app.BlinkInterval(), BlinkMounted)
	}
}

func TestSequenceTransitionEvents(t *testing.T) {
	r := newTestRig(DefaultConfig())
	events := captureEvents(r.app)
	r.mount()
	r.runUntil(2600)

	var transitions [][2]SequenceState
	for _, ev := range *events {
		if ev.kind == protocol.EventSequence {
			transitions = append(transitions, [2]SequenceState{
				SequenceState(ev.data[0]),
				SequenceState(ev.data[1]),
			})
		}
	}

	wantPrefix := [][2]SequenceState{
		{StateIdle, StateWaitInit},
		{StateWaitInit, StateWaitBeforeType},
		{StateWaitBeforeType, StateTypeChar},
		{StateTypeChar, StateReleaseChar},
	}
	if len(transitions) < len(wantPrefix) {
		t.Fatalf("%d transitions by 2600ms, want at least %d", len(transitions), len(wantPrefix))
	}
	for i, want := range wantPrefix {
		if transitions[i] != want {
			t.Errorf("transition %d = %v->%v, want %v->%v",
				i, transitions[i][0], transitions[i][1], want[0], want[1])
		}
	}
}

func TestGetReportAnswersNothing(t *testing.T) {
	r := newTestRig(DefaultConfig())
	buf := make([]byte, 16)
	if n := r.app.OnGetReport(ReportTypeInput, descriptor.ReportIDKeyboard, buf); n != 0 {
		t.Errorf("OnGetReport returned %d, want 0", n)
	}
}

func TestStateStrings(t *testing.T) {
	if StateIdle.String() != "idle" || StateDone.String() != "done" {
		t.Error("sequence state strings wrong")
	}
	if LinkMounted.String() != "mounted" {
		t.Error("link state strings wrong")
	}
	if SequenceState(200).String() != "unknown" {
		t.Error("out-of-range state should stringify as unknown")
	}
}
