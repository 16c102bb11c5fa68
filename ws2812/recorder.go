package ws2812

import "time"

// BitWave is the emitted waveform of one bit slot: the decoded bit value
// and the high and low phase durations.
type BitWave struct {
	Bit  uint8
	High time.Duration
	Low  time.Duration
}

// recWord is one word on the Recorder's virtual timeline.
type recWord struct {
	value uint32
	start time.Duration // when its first bit goes on the wire
	gap   time.Duration // idle low time between the previous word and this one
}

// Recorder is a software stand-in for the PIO serializer, used to test
// the transmission path without hardware. It implements Sink and models
// the parts of the hardware that matter to the producer: a bounded FIFO,
// a fixed drain rate of one word per WordPeriod, and a line that sits low
// whenever the queue runs dry.
//
// Time is virtual. Pushing words does not advance the clock unless the
// FIFO is full, in which case PutWord advances the clock to the moment a
// slot frees, exactly as the real call would block. Idle models the
// producer sleeping between frames.
type Recorder struct {
	// Capacity is the modeled FIFO depth, FIFODepth by default.
	Capacity int

	words   []recWord
	clock   time.Duration
	blocked time.Duration
}

// NewRecorder returns a Recorder with the hardware FIFO depth.
func NewRecorder() *Recorder {
	return &Recorder{Capacity: FIFODepth}
}

// PutWord implements Sink. A FIFO slot frees when the serializer moves a
// word into its shift register, so with the queue full the call stalls
// until the oldest queued word begins serializing.
func (r *Recorder) PutWord(w uint32) {
	if n := len(r.words); n >= r.Capacity {
		if release := r.words[n-r.Capacity].start; release > r.clock {
			r.blocked += release - r.clock
			r.clock = release
		}
	}
	start := r.clock
	var gap time.Duration
	if n := len(r.words); n > 0 {
		prevEnd := r.words[n-1].start + WordPeriod
		if start < prevEnd {
			start = prevEnd
		} else {
			gap = start - prevEnd
		}
	}
	r.words = append(r.words, recWord{value: w, start: start, gap: gap})
}

// Idle advances the producer's virtual clock by d, modeling the
// inter-tick sleep in the control loop.
func (r *Recorder) Idle(d time.Duration) {
	r.clock += d
}

// Words returns every word pushed so far, in drain order.
func (r *Recorder) Words() []uint32 {
	out := make([]uint32, len(r.words))
	for i, w := range r.words {
		out[i] = w.value
	}
	return out
}

// Blocked reports the total time PutWord spent stalled on a full FIFO.
func (r *Recorder) Blocked() time.Duration {
	return r.blocked
}

// Gaps returns, for each word, the low time between the previous word's
// last bit and this word's first bit. The first word's gap is zero.
func (r *Recorder) Gaps() []time.Duration {
	out := make([]time.Duration, len(r.words))
	for i, w := range r.words {
		out[i] = w.gap
	}
	return out
}

// Periods returns the waveform of every word serialized so far, one
// BitWave per bit slot in wire order, with the phase durations the 2/5/3
// program emits.
func (r *Recorder) Periods() []BitWave {
	out := make([]BitWave, 0, len(r.words)*BitsPerWord)
	for _, w := range r.words {
		out = appendWordWaves(out, w.value)
	}
	return out
}

// Frames splits the recorded words into latched frames: a new frame
// begins wherever the line sat low for ResetGap or longer. The result is
// what the strip actually displayed.
func (r *Recorder) Frames() [][]BitWave {
	var frames [][]BitWave
	var cur []BitWave
	for _, w := range r.words {
		if w.gap >= ResetGap && len(cur) > 0 {
			frames = append(frames, cur)
			cur = nil
		}
		cur = appendWordWaves(cur, w.value)
	}
	if len(cur) > 0 {
		frames = append(frames, cur)
	}
	return frames
}

func appendWordWaves(dst []BitWave, w uint32) []BitWave {
	for i := BitsPerWord - 1; i >= 0; i-- {
		if w>>uint(i)&1 == 1 {
			dst = append(dst, BitWave{Bit: 1, High: high1, Low: low1})
		} else {
			dst = append(dst, BitWave{Bit: 0, High: high0, Low: low0})
		}
	}
	return dst
}
