//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040/RP2350 timer peripheral: a 64-bit microsecond counter at 1MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// InitClock prepares the hardware timer. The RP2040 timer free-runs at
// 1MHz out of reset, so there is nothing to configure.
func InitClock() {
}

// Millis is the app's clock source. Wraps every ~49 days; the app only
// ever subtracts timestamps, so wraparound is harmless.
func Millis() uint32 {
	// Use the full 64-bit counter so the millisecond value wraps at
	// 2^32 ms rather than at 2^32 us (~71 minutes).
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint32(((uint64(high1) << 32) | uint64(low)) / 1000)
		}
		// High word rolled over mid-read; retry.
	}
}
