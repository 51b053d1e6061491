package encoding

import "encoding/binary"

// U8Column is the degenerate raw column codec for EncodingU8 samples (9-value
// bit codes and small enum ordinals): one byte per sample, no transform.
// Entropy coding is left to the wave-store's general-purpose compressor.
type U8Column struct{ buf []byte }

// NewU8Column returns an empty column builder.
func NewU8Column() *U8Column { return &U8Column{} }

// NewU8ColumnWithBuffer returns a column builder that appends into buf's
// backing array, letting a caller reuse a pooled buffer.
func NewU8ColumnWithBuffer(buf []byte) *U8Column { return &U8Column{buf: buf[:0]} }

// Append appends one sample.
func (c *U8Column) Append(v uint8) { c.buf = append(c.buf, v) }

// Bytes returns the encoded column.
func (c *U8Column) Bytes() []byte { return c.buf }

// DecodeU8Column reinterprets a byte slice as a sequence of U8 samples.
func DecodeU8Column(data []byte) []uint8 { return append([]uint8(nil), data...) }

// I64DeltaColumn encodes integer samples (I32 widened to I64, or native I64)
// as zigzag-signed delta varints against the previous sample, the same
// scheme timestamps use but without the second delta-of-delta layer —
// integer signal values commonly jump rather than drift at a fixed rate.
type I64DeltaColumn struct {
	buf     []byte
	started bool
	prev    int64
}

// NewI64DeltaColumn returns an empty column builder.
func NewI64DeltaColumn() *I64DeltaColumn { return &I64DeltaColumn{} }

// NewI64DeltaColumnWithBuffer returns a column builder that appends into
// buf's backing array, letting a caller reuse a pooled buffer.
func NewI64DeltaColumnWithBuffer(buf []byte) *I64DeltaColumn { return &I64DeltaColumn{buf: buf[:0]} }

// Append appends one sample.
func (c *I64DeltaColumn) Append(v int64) {
	if !c.started {
		c.buf = appendVarintZZ(c.buf, v)
		c.prev = v
		c.started = true
		return
	}
	c.buf = appendVarintZZ(c.buf, v-c.prev)
	c.prev = v
}

// Bytes returns the encoded column.
func (c *I64DeltaColumn) Bytes() []byte { return c.buf }

// I64DeltaDecoder reverses I64DeltaColumn.
type I64DeltaDecoder struct {
	buf     []byte
	pos     int
	started bool
	prev    int64
}

// NewI64DeltaDecoder wraps data for sequential decoding.
func NewI64DeltaDecoder(data []byte) *I64DeltaDecoder { return &I64DeltaDecoder{buf: data} }

// Next returns the next decoded sample, or false at end of stream.
func (d *I64DeltaDecoder) Next() (int64, bool) {
	if d.pos >= len(d.buf) {
		return 0, false
	}
	v, n := readVarintZZ(d.buf[d.pos:])
	if n <= 0 {
		return 0, false
	}
	d.pos += n
	if !d.started {
		d.prev = v
		d.started = true
		return d.prev, true
	}
	d.prev += v
	return d.prev, true
}

// EncodeI32Raw and DecodeI32Raw exist for columns that skip delta encoding
// entirely (e.g. a diagnostic dump of raw samples); unused by the default
// wave-store sink but kept available to callers composing their own codec
// pipeline, mirroring the teacher's practice of exposing both a transformed
// and a raw column path.
func EncodeI32Raw(vs []int32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v)) //nolint:gosec
	}
	return buf
}

// DecodeI32Raw reverses EncodeI32Raw.
func DecodeI32Raw(data []byte) []int32 {
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4:])) //nolint:gosec
	}
	return out
}
