// strip-play runs the animation engine on a Linux host and drives a
// physical WS2812 strip over SPI. Useful for trying patterns on a
// Raspberry Pi without reflashing the Pico firmware.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/segfault88/pico-display/animation"
	"github.com/segfault88/pico-display/config"
	hostspi "github.com/segfault88/pico-display/host/spi"
	"github.com/segfault88/pico-display/ws2812"
)

var configPath = flag.String("config", "", "JSON config file (built-in defaults when empty)")

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if cfg, err = config.Load(data); err != nil {
			log.Fatalf("parse config: %v", err)
		}
	}

	renderer, err := hostspi.NewRenderer(cfg.NumLEDs)
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Close()

	engine := animation.NewEngine(cfg.NumLEDs, cfg.Animation())
	frame := ws2812.NewFrame(cfg.NumLEDs)

	// One heartbeat line per second of ticks: liveness for a headless
	// host, same role as the firmware's status LED.
	ticksPerSecond := uint32(1000 / cfg.TickMillis)
	heartbeat := animation.NewHeartbeat(ticksPerSecond, func(bool) {
		fmt.Printf("alive: pattern=%s step=%d\n", engine.Pattern(), engine.Step())
	})

	fmt.Printf("Driving %d LEDs over SPI at %v per tick\n", cfg.NumLEDs, cfg.TickDelay())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	ticker := time.NewTicker(cfg.TickDelay())
	defer ticker.Stop()

	for {
		select {
		case s := <-sig:
			fmt.Printf("Got %s signal. Blanking strip and exiting.\n", s)
			if err := renderer.Halt(); err != nil {
				log.Printf("halt: %v", err)
			}
			return
		case <-ticker.C:
			heartbeat.Tick()
			engine.Tick(frame)
			if err := renderer.Render(frame); err != nil {
				log.Fatalf("render: %v", err)
			}
		}
	}
}
