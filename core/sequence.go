package core

import "gohid/protocol"

// SequenceState is one step of the scripted demo. The machine is polled:
// each tick performs at most one guard check and one send attempt, and a
// rejected send leaves the state unchanged so the same step retries on
// the next tick.
type SequenceState uint8

const (
	StateIdle SequenceState = iota
	StateWaitInit
	StateMouseUp
	StateMouseDown
	StateClickPress
	StateClickRelease
	StateWaitBeforeType
	StateTypeChar
	StateReleaseChar
	StateDone
)

func (s SequenceState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaitInit:
		return "wait-init"
	case StateMouseUp:
		return "mouse-up"
	case StateMouseDown:
		return "mouse-down"
	case StateClickPress:
		return "click-press"
	case StateClickRelease:
		return "click-release"
	case StateWaitBeforeType:
		return "wait-before-type"
	case StateTypeChar:
		return "type-char"
	case StateReleaseChar:
		return "release-char"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// StartPointerDemo jumps the sequencer into the mouse move/click
// sub-sequence. The scripted path only enters it when Config.PointerDemo
// is set; this lets a target invoke it directly (say, from a button).
func (a *App) StartPointerDemo() {
	a.setSequence(StateMouseUp)
}

// seqTick advances the script by at most one step. Runs every
// PollIntervalMS; the reference time advances by exactly the interval so
// delayed polling catches up instead of drifting.
func (a *App) seqTick(now uint32) {
	if now-a.tickRef < a.cfg.PollIntervalMS {
		return
	}
	a.tickRef += a.cfg.PollIntervalMS

	// Any state is abandoned the moment the device is not mounted;
	// a fresh cycle starts when the host mounts it again.
	if !a.bus.Mounted() {
		a.setSequence(StateIdle)
		return
	}

	// While suspended nothing is sent; ask the host to resume if it
	// said we may.
	if a.bus.Suspended() {
		if a.wakeAllowed {
			a.bus.RemoteWakeup()
			a.emit(protocol.EventWakeup)
		}
		return
	}

	if !a.port.Ready() {
		return
	}

	switch a.seq {
	case StateIdle:
		a.seqStart = now
		a.setSequence(StateWaitInit)

	case StateWaitInit:
		if now-a.seqStart >= a.cfg.StartDelayMS {
			if a.cfg.PointerDemo {
				a.setSequence(StateMouseUp)
			} else {
				a.seqStart = now
				a.setSequence(StateWaitBeforeType)
			}
		}

	case StateMouseUp:
		if a.mouseMove(0, -a.cfg.MouseTravel) {
			a.setSequence(StateMouseDown)
		}

	case StateMouseDown:
		if a.mouseMove(0, a.cfg.MouseTravel) {
			a.setSequence(StateClickPress)
		}

	case StateClickPress:
		if a.mouseButtons(MouseButtonLeft) {
			a.setSequence(StateClickRelease)
		}

	case StateClickRelease:
		if a.mouseButtons(0) {
			a.seqStart = now
			a.setSequence(StateWaitBeforeType)
		}

	case StateWaitBeforeType:
		if now-a.seqStart >= a.cfg.TypeDelayMS {
			a.cursor = 0
			a.setSequence(StateTypeChar)
		}

	case StateTypeChar:
		if a.cursor >= len(a.cfg.Text) {
			a.setSequence(StateDone)
			break
		}
		key, modifiers := CharToKey(a.cfg.Text[a.cursor])
		if a.pressKey(modifiers, key) {
			a.setSequence(StateReleaseChar)
		}

	case StateReleaseChar:
		if a.releaseKeys() {
			a.cursor++
			a.setSequence(StateTypeChar)
		}

	case StateDone:
		// Script complete. Stays here until an unmount resets it.
	}
}

func (a *App) setSequence(next SequenceState) {
	if a.seq == next {
		return
	}
	a.emit(protocol.EventSequence, byte(a.seq), byte(next))
	a.seq = next
}
