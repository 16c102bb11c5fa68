// Package animation generates successive LED strip frames. The engine is
// a state machine cycling through a fixed set of patterns; each pattern
// is a pure function of the strip length, a per-pattern step counter and
// its own sub-state, so a given seed and tick sequence always reproduces
// the same frames.
package animation

import "github.com/segfault88/pico-display/ws2812"

// Pattern identifies one animation in the cycle.
type Pattern uint8

const (
	RainbowWave Pattern = iota
	SolidColor
	ColorChase
	Sparkle

	numPatterns
)

func (p Pattern) String() string {
	switch p {
	case RainbowWave:
		return "rainbow-wave"
	case SolidColor:
		return "solid-color"
	case ColorChase:
		return "color-chase"
	case Sparkle:
		return "sparkle"
	}
	return "unknown"
}

// Config holds the animation constants of a deployment.
type Config struct {
	// RainbowSpeed is the hue advance per tick, RainbowPhase the hue
	// offset between adjacent LEDs.
	RainbowSpeed uint8
	RainbowPhase uint8

	// SolidSpeed is the hue advance per tick of the uniform color cycle.
	SolidSpeed uint8

	// ChaseColor is the single lit LED of the chase pattern.
	ChaseColor ws2812.RGB

	// SparkleCount is how many LEDs light per tick, SparkleSeed the PRNG
	// seed. Lit indices are drawn uniformly over the strip (the choice
	// of distribution is ours; nothing downstream depends on it).
	SparkleCount int
	SparkleSeed  uint32

	// DwellTicks is how many ticks each pattern runs before the cycle
	// advances. Zero disables cycling, which tests rely on.
	DwellTicks uint32
}

// Engine mutates a frame once per tick according to the active pattern.
// It is plain data owned by the control loop; nothing here is global and
// nothing reads the wall clock.
type Engine struct {
	n   int
	cfg Config

	pattern Pattern
	step    uint32 // per-pattern tick counter, reset on every switch
	dwell   uint32 // ticks spent in the current pattern
	fresh   bool   // frame not yet cleared since the last switch
	rng     xorshift32
}

// NewEngine returns an engine for a strip of n LEDs, starting on the
// first pattern of the cycle.
func NewEngine(n int, cfg Config) *Engine {
	return &Engine{
		n:   n,
		cfg: cfg,
		rng: newXorshift32(cfg.SparkleSeed),
	}
}

// Pattern returns the active pattern.
func (e *Engine) Pattern() Pattern {
	return e.pattern
}

// Step returns the active pattern's tick counter.
func (e *Engine) Step() uint32 {
	return e.step
}

// SetPattern switches to p immediately. Like the automatic cycle it
// resets the step counter and all pattern sub-state, so stale state from
// the previous pattern never shows through.
func (e *Engine) SetPattern(p Pattern) {
	e.pattern = p
	e.step = 0
	e.dwell = 0
	e.fresh = true
	e.rng = newXorshift32(e.cfg.SparkleSeed)
}

// Tick advances the animation by one frame, mutating f in place. f must
// have the length the engine was built for and keeps it on return.
func (e *Engine) Tick(f ws2812.Frame) {
	if e.cfg.DwellTicks > 0 && e.dwell >= e.cfg.DwellTicks {
		e.SetPattern((e.pattern + 1) % numPatterns)
	}
	// The previous pattern's last frame must not show through the new
	// one, e.g. as sparkle trails fading out of a rainbow.
	if e.fresh {
		f.Clear()
		e.fresh = false
	}
	e.dwell++

	switch e.pattern {
	case RainbowWave:
		e.rainbow(f)
	case SolidColor:
		e.solid(f)
	case ColorChase:
		e.chase(f)
	case Sparkle:
		e.sparkle(f)
	}

	// Hue counters wrap mod 256 and positions mod n, so wrapping the
	// step at their common multiple lands exactly on a cycle boundary.
	e.step++
	if e.step >= uint32(256*e.n) {
		e.step = 0
	}
}

func (e *Engine) rainbow(f ws2812.Frame) {
	for i := range f {
		h := uint8(e.step)*e.cfg.RainbowSpeed + uint8(i)*e.cfg.RainbowPhase
		f[i] = ws2812.Hue(h)
	}
}

func (e *Engine) solid(f ws2812.Frame) {
	f.Fill(ws2812.Hue(uint8(e.step) * e.cfg.SolidSpeed))
}

func (e *Engine) chase(f ws2812.Frame) {
	f.Clear()
	f[int(e.step)%e.n] = e.cfg.ChaseColor
}

func (e *Engine) sparkle(f ws2812.Frame) {
	f.Fade()
	for i := 0; i < e.cfg.SparkleCount; i++ {
		f[int(e.rng.next()%uint32(e.n))] = ws2812.White
	}
}
