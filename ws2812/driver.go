package ws2812

// Sink is the narrow capability the transmission driver needs from the
// hardware serializer: accept one encoded word at a time. PutWord must
// block while the transmission queue is full and return as soon as the
// word is queued; it never drops or reorders words.
//
// Deadline contract: once the first word of a frame is queued, the
// serializer drains one word every WordPeriod (30us at the 800kHz bit
// rate). The producer must deliver each subsequent word before the queue
// runs dry at a word boundary, or the line sits low mid-frame; a dry
// spell reaching ResetGap latches a partial frame. With FIFODepth words
// of slack the producer has FIFODepth*WordPeriod of headroom from a cold
// queue, which a straight encode loop beats by orders of magnitude.
type Sink interface {
	PutWord(w uint32)
}

// Driver feeds whole frames into a Sink.
type Driver struct {
	sink Sink
}

// NewDriver returns a Driver that transmits through sink.
func NewDriver(sink Sink) *Driver {
	return &Driver{sink: sink}
}

// Transmit encodes every LED of the frame in strip order and pushes the
// words into the sink, blocking only on queue backpressure. The frame is
// atomic as far as the strip is concerned: the driver inserts no latch
// itself, the serializer latches once the queue runs dry after the last
// word and the next Transmit has not yet begun.
//
// Call once per animation tick. The inter-tick delay governs animation
// speed only; protocol timing is the serializer's job.
func (d *Driver) Transmit(f Frame) {
	for _, c := range f {
		d.sink.PutWord(c.GRB())
	}
}
