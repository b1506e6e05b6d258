package core

import "testing"

func TestCharToKey(t *testing.T) {
	testCases := []struct {
		c    byte
		key  byte
		mods byte
	}{
		{'a', KeyA, 0},
		{'z', KeyA + 25, 0},
		{'h', 0x0B, 0},
		{'A', KeyA, ModLeftShift},
		{'Z', KeyA + 25, ModLeftShift},
		{'H', 0x0B, ModLeftShift},
		{'W', 0x1A, ModLeftShift},
		{' ', KeySpace, 0},
		{'!', Key1, ModLeftShift},
		// Unmapped characters become a no-op key, not an error.
		{'?', KeyNone, 0},
		{'3', KeyNone, 0},
		{0x00, KeyNone, 0},
		{'\n', KeyNone, 0},
	}

	for _, tc := range testCases {
		key, mods := CharToKey(tc.c)
		if key != tc.key || mods != tc.mods {
			t.Errorf("CharToKey(%q) = (0x%02X, 0x%02X), want (0x%02X, 0x%02X)",
				tc.c, key, mods, tc.key, tc.mods)
		}
	}
}

func TestUnmappedCharStillProducesPressReleasePair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "a?b"
	r := newTestRig(cfg)
	r.mount()
	r.runUntil(4000)

	pairs := keyboardPairs(t, r.port.sent)
	if len(pairs) != 3 {
		t.Fatalf("%d pairs for 3-character script, want 3", len(pairs))
	}
	if pairs[1][0].keys[0] != KeyNone {
		t.Errorf("press for '?' carried key 0x%02X, want no-op key", pairs[1][0].keys[0])
	}
	if r.app.Sequence() != StateDone {
		t.Errorf("sequence %v, want %v: unmapped char stalled the script", r.app.Sequence(), StateDone)
	}
}

func TestPressKeyUsesSlotZero(t *testing.T) {
	r := newTestRig(DefaultConfig())
	r.mount()

	if !r.app.pressKey(ModLeftShift, KeyA) {
		t.Fatal("pressKey rejected with ready port")
	}
	sent := r.port.sent[0]
	if sent.keys[0] != KeyA {
		t.Errorf("key in slot 0 = 0x%02X, want 0x%02X", sent.keys[0], KeyA)
	}
	for i := 1; i < 6; i++ {
		if sent.keys[i] != 0 {
			t.Errorf("slot %d = 0x%02X, want empty", i, sent.keys[i])
		}
	}
}

func TestReleaseKeysGatedOnReady(t *testing.T) {
	r := newTestRig(DefaultConfig())
	r.mount()
	r.port.ready = false

	if r.app.releaseKeys() {
		t.Error("releaseKeys claimed success with port not ready")
	}
	if len(r.port.sent) != 0 {
		t.Error("releaseKeys sent through a not-ready port")
	}
}
