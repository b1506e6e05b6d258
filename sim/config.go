package sim

import (
	"encoding/json"
	"fmt"

	"gohid/core"
)

// Config describes one simulated run.
type Config struct {
	// Text is the string the device types.
	Text string `json:"text"`

	// StartDelayMS and TypeDelayMS are the script's wait durations.
	StartDelayMS uint32 `json:"start_delay_ms"`
	TypeDelayMS  uint32 `json:"type_delay_ms"`

	// PollIntervalMS is the sequencer cadence.
	PollIntervalMS uint32 `json:"poll_interval_ms"`

	// PointerDemo routes the script through the mouse sub-sequence.
	PointerDemo bool `json:"pointer_demo"`

	// MouseTravel is the pointer demo's vertical travel.
	MouseTravel int8 `json:"mouse_travel"`

	// DurationMS is how long the simulated host stays attached.
	DurationMS uint32 `json:"duration_ms"`
}

// LoadConfig parses a JSON configuration and applies defaults.
func LoadConfig(jsonData []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("parse sim config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// DefaultSimConfig returns the stock run: plug in, type the greeting.
func DefaultSimConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Text == "" {
		cfg.Text = "Hello World!"
	}
	if cfg.DurationMS == 0 {
		cfg.DurationMS = 10000
	}
	// Script timing defaults live in core; zero values pass through.
}

// coreConfig maps the sim settings onto the firmware's own config.
func (c *Config) coreConfig() core.Config {
	return core.Config{
		Text:           c.Text,
		StartDelayMS:   c.StartDelayMS,
		TypeDelayMS:    c.TypeDelayMS,
		PollIntervalMS: c.PollIntervalMS,
		MouseTravel:    c.MouseTravel,
		PointerDemo:    c.PointerDemo,
	}
}
