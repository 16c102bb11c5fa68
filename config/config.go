// Package config loads the host-side deployment parameters. These mirror
// the compile-time constants baked into the firmware targets: a strip's
// length, pin and cadence are fixed per deployment, so the JSON file
// describes a deployment, it does not reconfigure a running strip.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segfault88/pico-display/animation"
	"github.com/segfault88/pico-display/ws2812"
)

// Config holds one deployment's parameters.
type Config struct {
	// NumLEDs is the strip length N, fixed for the process lifetime.
	NumLEDs int `json:"num_leds"`

	// Pin is the GPIO the strip's data line hangs off (firmware side).
	Pin uint8 `json:"pin"`

	// TickMillis is the inter-tick delay of the control loop. It sets
	// the visible animation speed, not protocol timing.
	TickMillis int `json:"tick_millis"`

	// DwellSeconds is how long each pattern runs before the cycle
	// advances.
	DwellSeconds int `json:"dwell_seconds"`

	RainbowSpeed uint8  `json:"rainbow_speed"`
	RainbowPhase uint8  `json:"rainbow_phase"`
	SolidSpeed   uint8  `json:"solid_speed"`
	SparkleCount int    `json:"sparkle_count"`
	SparkleSeed  uint32 `json:"sparkle_seed"`

	// SerialDevice and Baud are for the firmware debug monitor.
	SerialDevice string `json:"serial_device"`
	Baud         int    `json:"baud"`
}

// Load parses a JSON configuration and fills in defaults for anything
// left unset.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the stock 8-LED deployment.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	// Non-positive values make no sense for any of these, so they fall
	// back to defaults the same way missing fields do.
	if cfg.NumLEDs <= 0 {
		cfg.NumLEDs = 8
	}
	if cfg.Pin == 0 {
		cfg.Pin = 15 // GPIO15, physical pin 20 on the Pico
	}
	if cfg.TickMillis <= 0 {
		cfg.TickMillis = 40 // 25 frames per second
	}
	if cfg.DwellSeconds <= 0 {
		cfg.DwellSeconds = 5
	}
	if cfg.RainbowSpeed == 0 {
		cfg.RainbowSpeed = 2
	}
	if cfg.RainbowPhase == 0 {
		cfg.RainbowPhase = 32 // full wheel across an 8-LED strip
	}
	if cfg.SolidSpeed == 0 {
		cfg.SolidSpeed = 1
	}
	if cfg.SparkleCount <= 0 {
		cfg.SparkleCount = 2
	}
	if cfg.SparkleSeed == 0 {
		cfg.SparkleSeed = 0x9E3779B9
	}
	if cfg.SerialDevice == "" {
		cfg.SerialDevice = "/dev/ttyACM0"
	}
	if cfg.Baud <= 0 {
		cfg.Baud = 115200 // ignored by USB CDC but some adapters care
	}
}

// TickDelay returns the inter-tick delay as a duration.
func (cfg *Config) TickDelay() time.Duration {
	return time.Duration(cfg.TickMillis) * time.Millisecond
}

// DwellTicks converts the pattern dwell time into control loop ticks.
// A config that never went through Load or Default may hold zero or
// negative values; those disable pattern cycling rather than divide by
// zero or wrap to a huge tick count.
func (cfg *Config) DwellTicks() uint32 {
	if cfg.TickMillis <= 0 || cfg.DwellSeconds <= 0 {
		return 0
	}
	return uint32(cfg.DwellSeconds * 1000 / cfg.TickMillis)
}

// Animation maps the deployment parameters onto an engine configuration.
func (cfg *Config) Animation() animation.Config {
	return animation.Config{
		RainbowSpeed: cfg.RainbowSpeed,
		RainbowPhase: cfg.RainbowPhase,
		SolidSpeed:   cfg.SolidSpeed,
		ChaseColor:   ws2812.Blue,
		SparkleCount: cfg.SparkleCount,
		SparkleSeed:  cfg.SparkleSeed,
		DwellTicks:   cfg.DwellTicks(),
	}
}
