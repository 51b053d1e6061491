// Package binstream implements the G-format's binary primitives: fixed-width
// signed/unsigned 32- and 64-bit reads parameterised by an endian.EndianEngine,
// and standard LEB128 variable-length integer decoding (7 payload bits per
// byte, MSB set means "more bytes follow"). Every read method surfaces the
// underlying io error unchanged so callers can distinguish io.EOF /
// io.ErrUnexpectedEOF from a structural decode failure.
package binstream

import (
	"bufio"
	"io"
	"math"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/errs"
)

// Reader wraps a byte source with the fixed-width and varint read primitives
// used throughout the G-format decoder. It is not safe for concurrent use.
type Reader struct {
	r      io.Reader
	br     io.ByteReader
	engine endian.EndianEngine
	fixed  [8]byte
}

// New wraps r with the given endian engine. If r does not already implement
// io.ByteReader (needed for byte-at-a-time varint decode), it is wrapped in a
// bufio.Reader.
func New(r io.Reader, engine endian.EndianEngine) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		buffered := bufio.NewReader(r)
		br = buffered
		r = buffered
	}

	return &Reader{r: r, br: br, engine: engine}
}

// SetEngine switches the endian engine used for subsequent fixed-width reads,
// used once the header's endianness flag has been decoded.
func (r *Reader) SetEngine(engine endian.EndianEngine) { r.engine = engine }

// ReadByte reads and returns a single byte.
func (r *Reader) ReadByte() (byte, error) { return r.br.ReadByte() }

// ReadFull reads exactly len(buf) bytes into buf.
func (r *Reader) ReadFull(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	return err
}

// ReadN reads and returns exactly n freshly-allocated bytes.
func (r *Reader) ReadN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) readFixed(n int) ([]byte, error) {
	buf := r.fixed[:n]
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadU32 reads an unsigned 32-bit integer using the current endian engine.
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.readFixed(4)
	if err != nil {
		return 0, err
	}
	return r.engine.Uint32(buf), nil
}

// ReadI32 reads a signed 32-bit integer using the current endian engine.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil //nolint:gosec
}

// ReadPositiveU32 reads a 32-bit value and rejects it if its signed
// interpretation is negative, per spec.md §4.1.
func (r *Reader) ReadPositiveU32() (uint32, error) {
	i, err := r.ReadI32()
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, errs.ErrExpectedPositiveInteger
	}
	return uint32(i), nil
}

// ReadU64 reads an unsigned 64-bit integer using the current endian engine.
func (r *Reader) ReadU64() (uint64, error) {
	buf, err := r.readFixed(8)
	if err != nil {
		return 0, err
	}
	return r.engine.Uint64(buf), nil
}

// ReadI64 reads a signed 64-bit integer using the current endian engine.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil //nolint:gosec
}

// ReadF64 reads an IEEE-754 double using the current endian engine.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadUvarint decodes a standard LEB128 unsigned varint: 7 payload bits per
// byte, continuation signalled by the MSB.
func (r *Reader) ReadUvarint() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}

		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ReadVarint decodes a signed LEB128 varint using the same zigzag convention
// as the rest of the gwave encoding stack: (n << 1) ^ (n >> 63).
func (r *Reader) ReadVarint() (int64, error) {
	u, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}
