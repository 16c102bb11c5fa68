package ws2812

// Frame is the ordered set of colors for every LED on the strip at one
// instant. Its length is fixed when the strip is brought up and never
// changes afterwards; the control loop owns the one live Frame and hands
// it to the animation engine for in-place mutation once per tick.
type Frame []RGB

// NewFrame allocates an all-dark frame for a strip of n LEDs. n must be
// at least 1.
func NewFrame(n int) Frame {
	return make(Frame, n)
}

// Fill sets every LED to the same color.
func (f Frame) Fill(c RGB) {
	for i := range f {
		f[i] = c
	}
}

// Clear turns every LED off.
func (f Frame) Clear() {
	f.Fill(Black)
}

// Fade dims every channel of every LED to three quarters of its current
// intensity. Repeated calls decay lit LEDs toward black, which is how the
// sparkle pattern leaves trails.
func (f Frame) Fade() {
	for i, c := range f {
		f[i] = RGB{
			R: uint8(uint16(c.R) * 3 / 4),
			G: uint8(uint16(c.G) * 3 / 4),
			B: uint8(uint16(c.B) * 3 / 4),
		}
	}
}
