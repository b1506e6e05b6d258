package core

// blinkFor maps a link state to its indicator cadence.
func blinkFor(s LinkState) uint32 {
	switch s {
	case LinkMounted:
		return BlinkMounted
	case LinkSuspended:
		return BlinkSuspended
	}
	return BlinkNotMounted
}

// blinkTick toggles the indicator when its interval has elapsed. The
// reference time advances by exactly the interval, not by the observed
// elapsed time, so late polling never accumulates drift.
func (a *App) blinkTick(now uint32) {
	if a.blinkMS == BlinkDisabled {
		return
	}
	if now-a.blinkRef < a.blinkMS {
		return
	}
	a.blinkRef += a.blinkMS

	a.ledOn = !a.ledOn
	a.led.Set(a.ledOn)
}
