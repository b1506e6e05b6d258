package core

// Blink intervals for the link-state indicator, in milliseconds.
// Zero disables blinking (used while the host holds caps lock on).
const (
	BlinkNotMounted = 250
	BlinkMounted    = 1000
	BlinkSuspended  = 2500
	BlinkDisabled   = 0
)

// Config selects the script the demo plays once the host mounts the
// device. Zero values are filled in by applyDefaults.
type Config struct {
	// Text is typed character by character after the start delays.
	Text string

	// StartDelayMS is how long to sit in the initial wait state after
	// mounting before the script proceeds.
	StartDelayMS uint32

	// TypeDelayMS is the pause before typing begins.
	TypeDelayMS uint32

	// PollIntervalMS is the sequencer tick cadence.
	PollIntervalMS uint32

	// MouseTravel is the distance in report units the pointer demo
	// moves up and back down.
	MouseTravel int8

	// PointerDemo routes the script through the mouse move/click
	// sub-sequence before typing. Off by default, matching the
	// keyboard-only script.
	PointerDemo bool
}

// DefaultConfig returns the stock demo script.
func DefaultConfig() Config {
	cfg := Config{Text: "Hello World!"}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.StartDelayMS == 0 {
		cfg.StartDelayMS = 2000
	}
	if cfg.TypeDelayMS == 0 {
		cfg.TypeDelayMS = 500
	}
	if cfg.PollIntervalMS == 0 {
		cfg.PollIntervalMS = 10
	}
	if cfg.MouseTravel == 0 {
		cfg.MouseTravel = 20
	}
}
