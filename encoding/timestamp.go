package encoding

import "encoding/binary"

// TimestampDeltaEncoder encodes a strictly non-decreasing sequence of
// femtosecond timestamps as delta-of-delta varints: the first timestamp is
// stored raw (unsigned LEB128), every later one as a zigzag-signed varint
// of how far its delta differs from the previous delta. Adjacent samples
// at a fixed sample period collapse to a run of zero bytes.
type TimestampDeltaEncoder struct {
	buf       []byte
	started   bool
	prev      int64
	prevDelta int64
}

// NewTimestampDeltaEncoder returns a ready-to-use encoder.
func NewTimestampDeltaEncoder() *TimestampDeltaEncoder { return &TimestampDeltaEncoder{} }

// NewTimestampDeltaEncoderWithBuffer returns an encoder that appends into
// buf's backing array (buf is truncated to length 0 first), letting a
// caller reuse a pooled buffer across many columns instead of growing a
// fresh slice from nil every time.
func NewTimestampDeltaEncoderWithBuffer(buf []byte) *TimestampDeltaEncoder {
	return &TimestampDeltaEncoder{buf: buf[:0]}
}

// Append encodes the next timestamp, in femtoseconds.
func (e *TimestampDeltaEncoder) Append(ts int64) {
	if !e.started {
		e.buf = binary.AppendUvarint(e.buf, uint64(ts)) //nolint:gosec
		e.prev = ts
		e.started = true
		return
	}

	delta := ts - e.prev
	dod := delta - e.prevDelta
	e.buf = appendVarintZZ(e.buf, dod)
	e.prev = ts
	e.prevDelta = delta
}

// Bytes returns the encoded stream.
func (e *TimestampDeltaEncoder) Bytes() []byte { return e.buf }

// TimestampDeltaDecoder reverses TimestampDeltaEncoder.
type TimestampDeltaDecoder struct {
	buf       []byte
	pos       int
	started   bool
	prev      int64
	prevDelta int64
}

// NewTimestampDeltaDecoder wraps data for sequential decoding.
func NewTimestampDeltaDecoder(data []byte) *TimestampDeltaDecoder {
	return &TimestampDeltaDecoder{buf: data}
}

// Next returns the next decoded timestamp, or false at end of stream.
func (d *TimestampDeltaDecoder) Next() (int64, bool) {
	if d.pos >= len(d.buf) {
		return 0, false
	}

	if !d.started {
		u, n := binary.Uvarint(d.buf[d.pos:])
		if n <= 0 {
			return 0, false
		}
		d.pos += n
		d.prev = int64(u) //nolint:gosec
		d.started = true
		return d.prev, true
	}

	dod, n := readVarintZZ(d.buf[d.pos:])
	if n <= 0 {
		return 0, false
	}
	d.pos += n
	d.prevDelta += dod
	d.prev += d.prevDelta
	return d.prev, true
}

func appendVarintZZ(buf []byte, v int64) []byte {
	u := uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
	return binary.AppendUvarint(buf, u)
}

func readVarintZZ(buf []byte) (int64, int) {
	u, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, n
	}
	return int64(u>>1) ^ -int64(u&1), n //nolint:gosec
}
