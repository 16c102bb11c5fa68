//go:build rp2040

package main

import (
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"github.com/segfault88/pico-display/animation"
	"github.com/segfault88/pico-display/ws2812"
)

// Deployment constants. Strip length, pin and cadence are fixed at build
// time; there is no runtime reconfiguration protocol.
const (
	numLEDs = 8
	dataPin = machine.GPIO15 // physical pin 20 on the Pico

	// tickDelay sets the visible animation speed. It also dwarfs the
	// 50us latch the strip needs after each frame, so the reset gap
	// falls out of the loop cadence for free.
	tickDelay = 40 * time.Millisecond

	dwellTicks     = 125 // ~5s per pattern at 25 ticks/s
	heartbeatTicks = 12  // ~1Hz blink on the status LED
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	sink, err := newPIOSink(rp2pio.PIO0, 0, dataPin)
	if err != nil {
		fault(led, err)
	}

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
	driver := ws2812.NewDriver(sink)
	heartbeat := animation.NewHeartbeat(heartbeatTicks, led.Set)

	println("ws2812: driving", numLEDs, "LEDs on GPIO15")

	last := engine.Pattern()
	for {
		heartbeat.Tick()
		engine.Tick(frame)
		driver.Transmit(frame)

		if p := engine.Pattern(); p != last {
			last = p
			println("pattern:", p.String())
		}

		// The PIO drains the whole frame in numLEDs words' time and then
		// holds the line low until the next Transmit; sleeping here both
		// paces the animation and provides the latch gap.
		time.Sleep(tickDelay)
	}
}

// fault blinks the status LED fast forever. There is no recoverable
// error channel once the loop runs, so a failed bring-up just signals.
func fault(led machine.Pin, err error) {
	println("ws2812: bring-up failed:", err.Error())
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
