package animation

// xorshift32 is a tiny deterministic PRNG for the sparkle pattern. A
// fixed seed reproduces the exact same sequence of lit LEDs, which keeps
// the pattern testable and replayable; there is no call for cryptographic
// or even statistical quality here.
type xorshift32 uint32

func newXorshift32(seed uint32) xorshift32 {
	if seed == 0 {
		seed = 0x9E3779B9 // xorshift has a fixed point at zero
	}
	return xorshift32(seed)
}

func (s *xorshift32) next() uint32 {
	x := uint32(*s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*s = xorshift32(x)
	return x
}
