//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// WS2812 serializer program. One side-set output pin carries the data
// line; the state machine shifts a bit out of the OSR every 10 cycles
// and splits the slot 2/5/3: two cycles unconditionally high, five
// cycles following the bit value, three cycles unconditionally low.
// Autopull refills the OSR every 24 bits so words stream back to back
// with no gap, and the line idles low whenever the TX FIFO runs dry.
var ws2812Program = []uint16{
	//     .wrap_target
	0x6221, //  0: out    x, 1            side 0 [2]
	0x1123, //  1: jmp    !x, 3           side 1 [1]
	0x1400, //  2: jmp    0               side 1 [4]
	0xa442, //  3: nop                    side 0 [4]
	//     .wrap
}

const (
	ws2812Origin     = 0 // load at offset 0 for correct jump addresses
	ws2812WrapTarget = 0
	ws2812Wrap       = 3

	// One state machine cycle at 10 cycles per bit and the 800kHz WS2812
	// bit rate.
	ws2812CyclePeriodNS = 125
)

// pioSink drives the strip's data pin through a PIO state machine. It is
// the hardware implementation of ws2812.Sink: the state machine drains
// the TX FIFO autonomously, so software never touches per-bit timing.
type pioSink struct {
	sm     rp2pio.StateMachine
	offset uint8
}

// newPIOSink claims a state machine, loads the serializer program and
// starts it on the given data pin.
func newPIOSink(p *rp2pio.PIO, smNum uint8, pin machine.Pin) (*pioSink, error) {
	sm := p.StateMachine(smNum)
	sm.TryClaim()

	offset, err := p.AddProgram(ws2812Program, ws2812Origin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: p.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+ws2812WrapTarget, offset+ws2812Wrap)
	cfg.SetSidesetParams(1, false, false)
	cfg.SetSetPins(pin, 1)

	// Shift left so the MSB of the OSR leaves first, refill every 24
	// bits.
	cfg.SetOutShift(false, true, 24)

	// Only the TX direction is used; joining doubles the queue to 8
	// words of producer slack.
	cfg.SetFIFOJoin(rp2pio.FifoJoinTx)

	whole, frac, err := rp2pio.ClkDivFromPeriod(ws2812CyclePeriodNS, machine.CPUFrequency())
	if err != nil {
		return nil, err
	}
	cfg.SetClkDivIntFrac(whole, frac)

	sm.Init(offset, cfg)
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetEnabled(true)

	return &pioSink{sm: sm, offset: offset}, nil
}

// PutWord implements ws2812.Sink. The busy-wait is the backpressure
// contract: with the FIFO full the producer is already a full queue
// ahead of the wire, so spinning for a slot costs at most one word's
// drain time.
func (s *pioSink) PutWord(w uint32) {
	for s.sm.IsTxFIFOFull() {
	}
	// The OSR shifts out of the top; a 24-bit threshold means bits 31:8
	// hit the wire, so the GRB word moves up a byte.
	s.sm.TxPut(w << 8)
}

// Stop halts and flushes the state machine. Only used on fault paths;
// the control loop itself never stops.
func (s *pioSink) Stop() {
	s.sm.SetEnabled(false)
	s.sm.ClearFIFOs()
	s.sm.Restart()
}
