package animation

// Heartbeat is the control loop's liveness indicator: it flips an output
// every interval ticks, independent of frame content or transmission. If
// the output stops toggling the loop has stalled; a toggling heartbeat
// says nothing about whether the LED output is correct.
type Heartbeat struct {
	interval uint32
	ticks    uint32
	state    bool
	out      func(bool)
}

// NewHeartbeat returns a heartbeat that calls out with the new state
// every interval ticks. An interval of 1 toggles on every tick.
func NewHeartbeat(interval uint32, out func(bool)) *Heartbeat {
	if interval == 0 {
		interval = 1
	}
	return &Heartbeat{interval: interval, out: out}
}

// Tick counts one control loop iteration, toggling the output when the
// interval elapses.
func (h *Heartbeat) Tick() {
	h.ticks++
	if h.ticks >= h.interval {
		h.ticks = 0
		h.state = !h.state
		h.out(h.state)
	}
}

// State reports the current output level.
func (h *Heartbeat) State() bool {
	return h.state
}
