package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]byte(`{}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NumLEDs != 8 {
		t.Errorf("Expected default strip length 8, got %d", cfg.NumLEDs)
	}
	if cfg.Pin != 15 {
		t.Errorf("Expected default pin 15, got %d", cfg.Pin)
	}
	if cfg.TickMillis != 40 {
		t.Errorf("Expected default tick of 40ms, got %d", cfg.TickMillis)
	}
	if cfg.DwellSeconds != 5 {
		t.Errorf("Expected default dwell of 5s, got %d", cfg.DwellSeconds)
	}
	if cfg.SparkleSeed == 0 {
		t.Error("Default sparkle seed must be non-zero")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load([]byte(`{"num_leds": 60, "tick_millis": 20, "sparkle_count": 5}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NumLEDs != 60 {
		t.Errorf("Expected 60 LEDs, got %d", cfg.NumLEDs)
	}
	if cfg.TickMillis != 20 {
		t.Errorf("Expected 20ms tick, got %d", cfg.TickMillis)
	}
	if cfg.SparkleCount != 5 {
		t.Errorf("Expected sparkle count 5, got %d", cfg.SparkleCount)
	}
	// Untouched fields still get defaults.
	if cfg.RainbowPhase != 32 {
		t.Errorf("Expected default rainbow phase 32, got %d", cfg.RainbowPhase)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load([]byte(`{num_leds:}`)); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestDwellTicks(t *testing.T) {
	cfg := Default()
	if got := cfg.DwellTicks(); got != 125 {
		t.Errorf("Expected 125 dwell ticks at 40ms/5s, got %d", got)
	}
}

func TestDwellTicksDegenerateConfig(t *testing.T) {
	// A zero-value Config never saw applyDefaults; cycling just turns
	// off instead of dividing by zero.
	var cfg Config
	if got := cfg.DwellTicks(); got != 0 {
		t.Errorf("Expected 0 dwell ticks for a zero config, got %d", got)
	}
	cfg = Config{TickMillis: -20, DwellSeconds: 5}
	if got := cfg.DwellTicks(); got != 0 {
		t.Errorf("Expected 0 dwell ticks for a negative tick, got %d", got)
	}
}

func TestLoadClampsNonPositiveValues(t *testing.T) {
	cfg, err := Load([]byte(`{"num_leds": -3, "tick_millis": -5, "dwell_seconds": -1}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NumLEDs != 8 {
		t.Errorf("Expected negative strip length to fall back to 8, got %d", cfg.NumLEDs)
	}
	if cfg.TickMillis != 40 {
		t.Errorf("Expected negative tick to fall back to 40ms, got %d", cfg.TickMillis)
	}
	if got := cfg.DwellTicks(); got != 125 {
		t.Errorf("Expected 125 dwell ticks after clamping, got %d", got)
	}
}

func TestAnimationMapping(t *testing.T) {
	cfg := Default()
	a := cfg.Animation()
	if a.DwellTicks != cfg.DwellTicks() {
		t.Errorf("Animation dwell mismatch: %d vs %d", a.DwellTicks, cfg.DwellTicks())
	}
	if a.SparkleSeed != cfg.SparkleSeed {
		t.Errorf("Animation seed mismatch: %d vs %d", a.SparkleSeed, cfg.SparkleSeed)
	}
}
