package animation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/segfault88/pico-display/animation"
	"github.com/segfault88/pico-display/ws2812"
)

func testConfig() Config {
	return Config{
		RainbowSpeed: 1,
		RainbowPhase: 32,
		SolidSpeed:   1,
		ChaseColor:   ws2812.Blue,
		SparkleCount: 2,
		SparkleSeed:  0xBEEF,
	}
}

func TestFrameLengthInvariant(t *testing.T) {
	patterns := []Pattern{RainbowWave, SolidColor, ColorChase, Sparkle}
	for _, n := range []int{1, 5, 30} {
		for _, p := range patterns {
			t.Run(fmt.Sprintf("%s/n=%d", p, n), func(t *testing.T) {
				e := NewEngine(n, testConfig())
				e.SetPattern(p)
				f := ws2812.NewFrame(n)
				for i := 0; i < 20; i++ {
					e.Tick(f)
					assert.Equal(t, n, len(f), "frame length must stay fixed")
				}
			})
		}
	}
}

func TestChaseSingleLitLED(t *testing.T) {
	const n = 5
	e := NewEngine(n, testConfig())
	e.SetPattern(ColorChase)
	f := ws2812.NewFrame(n)

	for tick := 0; tick < 3*n; tick++ {
		e.Tick(f)
		lit := -1
		for i, c := range f {
			if c != ws2812.Black {
				assert.Equal(t, -1, lit, "more than one LED lit")
				lit = i
			}
		}
		assert.Equal(t, tick%n, lit, "lit index must be step mod n")
		assert.Equal(t, ws2812.Blue, f[lit])
	}
}

func TestChaseScenarioStepSeven(t *testing.T) {
	// n=5, step=7: lit index is 7 mod 5 = 2.
	const n = 5
	e := NewEngine(n, testConfig())
	e.SetPattern(ColorChase)
	f := ws2812.NewFrame(n)
	for i := 0; i < 8; i++ { // the 8th tick renders step 7
		e.Tick(f)
	}
	want := ws2812.Frame{ws2812.Black, ws2812.Black, ws2812.Blue, ws2812.Black, ws2812.Black}
	assert.Equal(t, want, f)
}

func TestSwitchResetsSubState(t *testing.T) {
	const n = 7
	e := NewEngine(n, testConfig())
	f := ws2812.NewFrame(n)

	// Accumulate step inside another pattern first.
	for i := 0; i < 11; i++ {
		e.Tick(f)
	}
	e.SetPattern(ColorChase)
	assert.Equal(t, uint32(0), e.Step(), "step must reset on switch")

	e.Tick(f)
	assert.NotEqual(t, ws2812.Black, f[0], "chase must restart at index 0")
	for i := 1; i < n; i++ {
		assert.Equal(t, ws2812.Black, f[i])
	}
}

func TestSwitchIntoSparkleDropsOldFrame(t *testing.T) {
	const n = 12
	e := NewEngine(n, testConfig())
	e.SetPattern(SolidColor)
	f := ws2812.NewFrame(n)
	for i := 0; i < 5; i++ {
		e.Tick(f)
	}

	// A manual switch must not leave the solid color behind to decay as
	// fake sparkle trails.
	e.SetPattern(Sparkle)
	e.Tick(f)
	for i, c := range f {
		if c != ws2812.White {
			assert.Equal(t, ws2812.Black, c, "LED %d should be dark, not a remnant of the old pattern", i)
		}
	}
}

func TestSolidColorScenario(t *testing.T) {
	// n=3, step=0: three copies of Hue(0), each encoding to green=0x00,
	// red=0xFF, blue=0x00.
	const n = 3
	e := NewEngine(n, testConfig())
	e.SetPattern(SolidColor)
	f := ws2812.NewFrame(n)
	e.Tick(f)

	for i, c := range f {
		assert.Equal(t, ws2812.RGB{R: 255}, c, "LED %d", i)
		assert.Equal(t, uint32(0x00FF00), c.GRB(), "LED %d wire word", i)
	}
}

func TestSolidColorCycles(t *testing.T) {
	const n = 4
	e := NewEngine(n, testConfig())
	e.SetPattern(SolidColor)
	f := ws2812.NewFrame(n)

	e.Tick(f)
	first := f[0]
	e.Tick(f)
	assert.NotEqual(t, first, f[0], "hue must advance between ticks")
	for _, c := range f {
		assert.Equal(t, f[0], c, "solid color must be uniform")
	}
}

func TestSparkleDeterministic(t *testing.T) {
	const n = 30
	a := NewEngine(n, testConfig())
	b := NewEngine(n, testConfig())
	a.SetPattern(Sparkle)
	b.SetPattern(Sparkle)
	fa := ws2812.NewFrame(n)
	fb := ws2812.NewFrame(n)

	for i := 0; i < 25; i++ {
		a.Tick(fa)
		b.Tick(fb)
		assert.Equal(t, fa, fb, "tick %d: same seed must reproduce the same frame", i)
	}
}

func TestSparkleLightsAndDecays(t *testing.T) {
	const n = 30
	cfg := testConfig()
	e := NewEngine(n, cfg)
	e.SetPattern(Sparkle)
	f := ws2812.NewFrame(n)

	e.Tick(f)
	lit := 0
	for _, c := range f {
		switch c {
		case ws2812.White:
			lit++
		case ws2812.Black:
		default:
			t.Errorf("first tick should only contain white or black, got %v", c)
		}
	}
	assert.LessOrEqual(t, lit, cfg.SparkleCount)
	assert.Greater(t, lit, 0)

	// On the next tick the previous sparks must have decayed unless
	// they were re-lit.
	e.Tick(f)
	for i, c := range f {
		if c != ws2812.White && c != ws2812.Black {
			assert.Equal(t, ws2812.RGB{R: 191, G: 191, B: 191}, c, "LED %d", i)
		}
	}
}

func TestPatternCycleRoundRobin(t *testing.T) {
	const n = 4
	cfg := testConfig()
	cfg.DwellTicks = 3
	e := NewEngine(n, cfg)
	f := ws2812.NewFrame(n)

	order := []Pattern{RainbowWave, SolidColor, ColorChase, Sparkle, RainbowWave}
	for _, want := range order {
		for i := 0; i < 3; i++ {
			e.Tick(f)
			assert.Equal(t, want, e.Pattern())
		}
	}
}

func TestStepWrapsOnCycleBoundary(t *testing.T) {
	const n = 5
	e := NewEngine(n, testConfig())
	e.SetPattern(ColorChase)
	f := ws2812.NewFrame(n)

	// 256*n ticks is one full cycle; the counter must land back at the
	// start without a positional jump.
	for i := 0; i < 256*n; i++ {
		e.Tick(f)
	}
	assert.Equal(t, uint32(0), e.Step())
	e.Tick(f)
	assert.NotEqual(t, ws2812.Black, f[0], "wraparound must continue at index 0")
}

func TestHeartbeat(t *testing.T) {
	var toggles []bool
	h := NewHeartbeat(2, func(on bool) { toggles = append(toggles, on) })

	for i := 0; i < 10; i++ {
		h.Tick()
	}
	assert.Equal(t, []bool{true, false, true, false, true}, toggles)
	assert.True(t, h.State())
}

func TestHeartbeatEveryTick(t *testing.T) {
	count := 0
	h := NewHeartbeat(1, func(bool) { count++ })
	for i := 0; i < 7; i++ {
		h.Tick()
	}
	assert.Equal(t, 7, count)
}
