package ws2812

import "time"

// WS2812 bit timing contract. Each bit occupies a fixed period; the split
// between the leading high phase and the trailing low phase encodes the
// bit value. The strip tolerates +-150ns on each phase. Holding the line
// low for ResetGap or longer after the last bit latches the frame; a low
// gap that long in the middle of a frame latches a partial frame instead.
const (
	T0High = 400 * time.Nanosecond
	T0Low  = 850 * time.Nanosecond
	T1High = 800 * time.Nanosecond
	T1Low  = 450 * time.Nanosecond

	Tolerance = 150 * time.Nanosecond
	ResetGap  = 50 * time.Microsecond

	// BitsPerWord is the size of one LED's wire word: GRB, MSB first,
	// words back to back with no gap inside a frame.
	BitsPerWord = 24

	// FIFODepth is the capacity of the hardware transmission queue. The
	// RP2040 PIO TX FIFO holds 4 words, 8 once the RX half is joined to
	// it, and the serializer drains it autonomously.
	FIFODepth = 8
)

// The PIO serializer runs the classic 3-instruction-per-bit program at
// 10 state machine cycles per bit: 2 cycles of unconditional high, 5
// cycles that are high for a 1 and low for a 0, 3 cycles of unconditional
// low. At the 800kHz bit rate that puts the state machine clock at 8MHz.
const (
	BitRate      = 800_000
	CyclesPerBit = 10

	cyclePeriod = time.Second / (BitRate * CyclesPerBit) // 125ns

	// BitPeriod is the fixed duration of one bit slot on the wire.
	BitPeriod = CyclesPerBit * cyclePeriod

	// WordPeriod is how long the serializer takes to drain one queued
	// word: the budget the producer has to deliver the next one.
	WordPeriod = BitsPerWord * BitPeriod

	// Emitted phase durations of the 2/5/3 cycle split.
	high1 = 7 * cyclePeriod
	low1  = 3 * cyclePeriod
	high0 = 2 * cyclePeriod
	low0  = 8 * cyclePeriod
)
