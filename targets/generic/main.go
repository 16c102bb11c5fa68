//go:build tinygo && !rp2040

package main

// Fallback target for boards without a PIO peripheral: the strip hangs
// off the board's onboard NeoPixel pin and the bit-banged driver from
// tinygo.org/x/drivers generates the waveform with interrupts masked.
// The animation core is identical to the RP2040 target; only the sink
// differs, and without a hardware FIFO there is no backpressure to
// honor, the write call itself owns the wire until the frame is out.

import (
	"image/color"
	"machine"
	"time"

	wsdrv "tinygo.org/x/drivers/ws2812"

	"github.com/segfault88/pico-display/animation"
	"github.com/segfault88/pico-display/ws2812"
)

const (
	numLEDs        = 8
	tickDelay      = 40 * time.Millisecond
	dwellTicks     = 125
	heartbeatTicks = 12
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	pin := machine.WS2812
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dev := wsdrv.New(pin)

	engine := animation.NewEngine(numLEDs, animation.Config{
		RainbowSpeed: 2,
		RainbowPhase: 32,
		SolidSpeed:   1,
		ChaseColor:   ws2812.Blue,
		SparkleCount: 2,
		SparkleSeed:  0x9E3779B9,
		DwellTicks:   dwellTicks,
	})
	frame := ws2812.NewFrame(numLEDs)
	heartbeat := animation.NewHeartbeat(heartbeatTicks, led.Set)
	buf := make([]color.RGBA, numLEDs)

	for {
		heartbeat.Tick()
		engine.Tick(frame)

		for i, c := range frame {
			buf[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
		}
		dev.WriteColors(buf)

		time.Sleep(tickDelay)
	}
}
