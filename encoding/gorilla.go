package encoding

import (
	"math"
	"math/bits"
)

// F64GorillaEncoder XOR-compresses a sequence of float64 samples using the
// Facebook Gorilla scheme, adapted from the now-internalised
// numeric_gorilla encoder this decoder's authors carried forward: the
// first value is stored raw; every later value is XORed against its
// predecessor and encoded as either a single zero bit (no change), a
// "10" block reusing the previous leading/trailing-zero window, or a "11"
// block carrying a fresh 5-bit leading-zero count and 6-bit
// (significant-length - 1) count ahead of the significant bits themselves.
type F64GorillaEncoder struct {
	w                         bitWriter
	started                   bool
	prev                      uint64
	prevLeading, prevTrailing uint8
}

// NewF64GorillaEncoder returns a ready-to-use encoder.
func NewF64GorillaEncoder() *F64GorillaEncoder { return &F64GorillaEncoder{} }

// NewF64GorillaEncoderWithBuffer returns an encoder whose bit writer
// accumulates into buf's backing array, letting a caller reuse a pooled
// buffer across columns.
func NewF64GorillaEncoderWithBuffer(buf []byte) *F64GorillaEncoder {
	return &F64GorillaEncoder{w: bitWriter{buf: buf[:0]}}
}

// Append encodes the next sample.
func (e *F64GorillaEncoder) Append(v float64) {
	cur := math.Float64bits(v)
	if !e.started {
		e.w.writeBits(cur, 64)
		e.prev = cur
		e.started = true
		return
	}

	xor := e.prev ^ cur
	e.prev = cur
	if xor == 0 {
		e.w.writeBit(0)
		return
	}

	leading := uint8(bits.LeadingZeros64(xor))
	trailing := uint8(bits.TrailingZeros64(xor))
	if leading > 31 {
		leading = 31 // clamp to what the 5-bit field can hold
	}

	if e.prevLeading > 0 || e.prevTrailing > 0 {
		windowBits := 64 - e.prevLeading - e.prevTrailing
		if leading >= e.prevLeading && trailing >= e.prevTrailing && windowBits > 0 {
			e.w.writeBits(0b10, 2)
			e.w.writeBits(xor>>e.prevTrailing, windowBits)
			return
		}
	}

	e.w.writeBits(0b11, 2)
	e.w.writeBits(uint64(leading), 5)
	sig := 64 - leading - trailing
	e.w.writeBits(uint64(sig-1), 6)
	e.w.writeBits(xor>>trailing, sig)
	e.prevLeading, e.prevTrailing = leading, trailing
}

// Bytes returns the encoded stream, padding the final byte with zero bits.
func (e *F64GorillaEncoder) Bytes() []byte { return e.w.flush() }

// F64GorillaDecoder reverses F64GorillaEncoder.
type F64GorillaDecoder struct {
	r                         bitReader
	started                   bool
	prev                      uint64
	prevLeading, prevTrailing uint8
}

// NewF64GorillaDecoder wraps data for sequential decoding.
func NewF64GorillaDecoder(data []byte) *F64GorillaDecoder {
	return &F64GorillaDecoder{r: bitReader{buf: data}}
}

// Next returns the next decoded sample, or false once the stream is
// exhausted (including mid-symbol truncation, treated as end of stream).
func (d *F64GorillaDecoder) Next() (float64, bool) {
	if !d.started {
		raw, ok := d.r.readBits(64)
		if !ok {
			return 0, false
		}
		d.prev = raw
		d.started = true
		return math.Float64frombits(raw), true
	}

	b0, ok := d.r.readBit()
	if !ok {
		return 0, false
	}
	if b0 == 0 {
		return math.Float64frombits(d.prev), true
	}

	b1, ok := d.r.readBit()
	if !ok {
		return 0, false
	}
	if b1 == 0 {
		windowBits := 64 - d.prevLeading - d.prevTrailing
		sigBits, ok := d.r.readBits(windowBits)
		if !ok {
			return 0, false
		}
		d.prev ^= sigBits << d.prevTrailing
		return math.Float64frombits(d.prev), true
	}

	leadingU, ok := d.r.readBits(5)
	if !ok {
		return 0, false
	}
	sigLenMinus1, ok := d.r.readBits(6)
	if !ok {
		return 0, false
	}
	leading := uint8(leadingU)
	sig := uint8(sigLenMinus1) + 1
	trailing := 64 - leading - sig

	sigBits, ok := d.r.readBits(sig)
	if !ok {
		return 0, false
	}
	d.prev ^= sigBits << trailing
	d.prevLeading, d.prevTrailing = leading, trailing
	return math.Float64frombits(d.prev), true
}
