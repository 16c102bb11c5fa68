// Package spi renders strip frames from a Linux host. WS2812 strips have
// no native host-side bus, but the NRZ bit pattern can be synthesized on
// a SPI MOSI line at three SPI bits per LED bit, which is what the
// periph.io nrzled driver does; the driver also appends the latch gap
// after every frame, so whole-frame writes keep the same atomicity the
// PIO path gets from its FIFO running dry.
package spi

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/segfault88/pico-display/ws2812"
)

// nrzFreq is 3x the 800kHz bit rate plus margin, the SPI clock at which
// one LED bit maps onto three MOSI bits.
const nrzFreq = 2500 * physic.KiloHertz

// Renderer drives a WS2812 strip through a SPI port.
type Renderer struct {
	port spi.PortCloser
	dev  *nrzled.Dev
	buf  []byte
}

// NewRenderer initializes the periph host, opens the first SPI port and
// binds the NRZ driver to it for a strip of numPixels LEDs.
func NewRenderer(numPixels int) (*Renderer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("no SPI port available: %w", err)
	}
	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: numPixels,
		Channels:  3,
		Freq:      nrzFreq,
	})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &Renderer{port: port, dev: dev, buf: make([]byte, 0, numPixels*3)}, nil
}

// Render pushes one whole frame to the strip. The nrzled driver performs
// the GRB reordering and NRZ expansion; it takes plain RGB bytes.
func (r *Renderer) Render(f ws2812.Frame) error {
	r.buf = r.buf[:0]
	for _, c := range f {
		r.buf = append(r.buf, c.R, c.G, c.B)
	}
	if _, err := r.dev.Write(r.buf); err != nil {
		return fmt.Errorf("spi write: %w", err)
	}
	return nil
}

// Halt blanks the strip.
func (r *Renderer) Halt() error {
	return r.dev.Halt()
}

// Close blanks the strip and releases the SPI port.
func (r *Renderer) Close() error {
	if err := r.dev.Halt(); err != nil {
		r.port.Close()
		return err
	}
	return r.port.Close()
}
