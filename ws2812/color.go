// Package ws2812 implements the wire-level model of a WS2812 addressable
// LED strip: the per-LED color word, the bit timing contract the output
// waveform must honor, and the transmission driver that feeds encoded
// words to a hardware serializer through a bounded FIFO.
package ws2812

// RGB is the color of a single LED. It is a plain value type; construct
// and discard freely.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// New builds an RGB from individual channel intensities. The channel type
// already constrains values to 0..255 so there is nothing to validate.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// GRB returns the 24-bit word the strip expects on the wire, green byte
// in bits 23:16, red in 15:8, blue in 7:0. WS2812 LEDs latch channels in
// GRB order; changing this layout shifts every color on real hardware.
func (c RGB) GRB() uint32 {
	return uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.B)
}

// Predefined colors.
var (
	Black   = RGB{}
	Red     = RGB{R: 255}
	Green   = RGB{G: 255}
	Blue    = RGB{B: 255}
	White   = RGB{R: 255, G: 255, B: 255}
	Yellow  = RGB{R: 255, G: 255}
	Cyan    = RGB{G: 255, B: 255}
	Magenta = RGB{R: 255, B: 255}
)

// Hue maps an 8-bit hue angle to a fully saturated, full brightness color
// on a six-segment color wheel. Hue(0) is pure red and the mapping is
// periodic: the uint8 argument wraps modulo 256 by construction, so
// animation counters can increment forever without a visible seam.
func Hue(h uint8) RGB {
	seg := h / 43
	ramp := (h - seg*43) * 6
	switch seg {
	case 0: // red -> yellow
		return RGB{R: 255, G: ramp}
	case 1: // yellow -> green
		return RGB{R: 255 - ramp, G: 255}
	case 2: // green -> cyan
		return RGB{G: 255, B: ramp}
	case 3: // cyan -> blue
		return RGB{G: 255 - ramp, B: 255}
	case 4: // blue -> magenta
		return RGB{R: ramp, B: 255}
	default: // magenta -> red
		return RGB{R: 255, B: 255 - ramp}
	}
}
