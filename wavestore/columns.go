package wavestore

import (
	"fmt"

	"github.com/wavebench/gwave/compress"
	"github.com/wavebench/gwave/encoding"
	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/format"
	"github.com/wavebench/gwave/internal/pool"
)

// encTS accumulates one signal's timestamp column. The encoder writes into
// a pooled column buffer (pool.GetColumnBuffer) instead of growing its own
// slice from nil, so a long-running decode pass over many signals reuses
// backing arrays rather than allocating one per handle.
type encTS struct {
	enc *encoding.TimestampDeltaEncoder
	buf *pool.ByteBuffer
}

func newEncTS() *encTS {
	buf := pool.GetColumnBuffer()
	return &encTS{enc: encoding.NewTimestampDeltaEncoderWithBuffer(buf.Bytes()), buf: buf}
}

func (c *encTS) append(timeFS int64) { c.enc.Append(timeFS) }

// release returns the underlying buffer to the pool. Must only be called
// once the encoded bytes have already been consumed (compressed), since
// the pool may hand the backing array to a different column afterwards.
func (c *encTS) release() { pool.PutColumnBuffer(c.buf) }

// encVal accumulates one signal's value column, dispatching on the physical
// encoding observed on its first sample. A column never changes encoding
// mid-stream; a mismatched later Value is a caller bug against spec.md
// §4.9's single-encoding-per-handle contract.
type encVal struct {
	encoding format.PhysicalEncoding
	u8       *encoding.U8Column
	i64      *encoding.I64DeltaColumn
	gorilla  *encoding.F64GorillaEncoder
	buf      *pool.ByteBuffer
}

func newEncVal(enc format.PhysicalEncoding) *encVal {
	v := &encVal{encoding: enc, buf: pool.GetColumnBuffer()}
	switch enc {
	case format.EncodingU8:
		v.u8 = encoding.NewU8ColumnWithBuffer(v.buf.Bytes())
	case format.EncodingI32, format.EncodingI64:
		v.i64 = encoding.NewI64DeltaColumnWithBuffer(v.buf.Bytes())
	case format.EncodingF64:
		v.gorilla = encoding.NewF64GorillaEncoderWithBuffer(v.buf.Bytes())
	}
	return v
}

// release returns the underlying buffer to the pool; see encTS.release.
func (v *encVal) release() { pool.PutColumnBuffer(v.buf) }

func (v *encVal) append(value Value) error {
	if value.Encoding != v.encoding {
		return fmt.Errorf("%w: column is %s, got %s", errs.ErrUnknownEncoding, v.encoding, value.Encoding)
	}
	switch v.encoding {
	case format.EncodingU8:
		v.u8.Append(value.U8)
	case format.EncodingI32, format.EncodingI64:
		v.i64.Append(value.I64)
	case format.EncodingF64:
		v.gorilla.Append(value.F64)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnknownEncoding, v.encoding)
	}
	return nil
}

func (v *encVal) bytes() []byte {
	switch v.encoding {
	case format.EncodingU8:
		return v.u8.Bytes()
	case format.EncodingI32, format.EncodingI64:
		return v.i64.Bytes()
	case format.EncodingF64:
		return v.gorilla.Bytes()
	default:
		return nil
	}
}

// storedSignal is a finished column pair: compressed bytes plus enough
// metadata to decompress and decode them again on demand.
type storedSignal struct {
	encoding      format.PhysicalEncoding
	sampleCount   int
	tsCodec       format.CompressionType
	valCodec      format.CompressionType
	tsCompressed  []byte
	valCompressed []byte
	tsStats       compress.CompressionStats
	valStats      compress.CompressionStats
}

func (c *column) finish(tsCodecType, valCodecType format.CompressionType) (*storedSignal, error) {
	tsRaw := c.ts.enc.Bytes()
	valRaw := c.values.bytes()

	tsCodec, err := compress.CreateCodec(tsCodecType, "timestamp")
	if err != nil {
		return nil, err
	}
	valCodec, err := compress.CreateCodec(valCodecType, "value")
	if err != nil {
		return nil, err
	}

	tsCompressed, err := tsCodec.Compress(tsRaw)
	if err != nil {
		return nil, err
	}
	valCompressed, err := valCodec.Compress(valRaw)
	if err != nil {
		return nil, err
	}

	// compress.NoOpCompressor.Compress returns its input slice unmodified
	// rather than a copy, so tsCompressed/valCompressed may still alias the
	// pooled raw buffers below; every real codec returns a fresh
	// allocation. Clone defensively before the buffers go back to the pool,
	// otherwise a later column reusing the same backing array would
	// silently corrupt an already-stored signal's "compressed" bytes.
	if tsCodecType == format.CompressionNone {
		tsCompressed = append([]byte(nil), tsCompressed...)
	}
	if valCodecType == format.CompressionNone {
		valCompressed = append([]byte(nil), valCompressed...)
	}

	// The raw columns are fully consumed (compressed, and cloned above if
	// necessary) at this point; return their backing arrays to the pool
	// for the next signal's columns.
	c.ts.release()
	c.values.release()

	return &storedSignal{
		encoding:      c.values.encoding,
		sampleCount:   c.count,
		tsCodec:       tsCodecType,
		valCodec:      valCodecType,
		tsCompressed:  tsCompressed,
		valCompressed: valCompressed,
		tsStats:       compress.CompressionStats{Algorithm: tsCodecType, OriginalSize: int64(len(tsRaw)), CompressedSize: int64(len(tsCompressed))},
		valStats:      compress.CompressionStats{Algorithm: valCodecType, OriginalSize: int64(len(valRaw)), CompressedSize: int64(len(valCompressed))},
	}, nil
}

// samples decompresses and decodes a stored signal back into the original
// (time, value) sequence, in emission order.
func (s *storedSignal) samples() ([]Sample, error) {
	tsCodec, err := compress.CreateCodec(s.tsCodec, "timestamp")
	if err != nil {
		return nil, err
	}
	valCodec, err := compress.CreateCodec(s.valCodec, "value")
	if err != nil {
		return nil, err
	}

	tsRaw, err := tsCodec.Decompress(s.tsCompressed)
	if err != nil {
		return nil, err
	}
	valRaw, err := valCodec.Decompress(s.valCompressed)
	if err != nil {
		return nil, err
	}

	out := make([]Sample, 0, s.sampleCount)
	tsDec := encoding.NewTimestampDeltaDecoder(tsRaw)

	switch s.encoding {
	case format.EncodingU8:
		vals := encoding.DecodeU8Column(valRaw)
		for i := 0; i < s.sampleCount; i++ {
			t, ok := tsDec.Next()
			if !ok {
				return nil, errs.ErrFailedToParseSection
			}
			out = append(out, Sample{TimeFS: t, Value: U8Value(vals[i])})
		}
	case format.EncodingI32, format.EncodingI64:
		valDec := encoding.NewI64DeltaDecoder(valRaw)
		for i := 0; i < s.sampleCount; i++ {
			t, ok := tsDec.Next()
			if !ok {
				return nil, errs.ErrFailedToParseSection
			}
			v, ok := valDec.Next()
			if !ok {
				return nil, errs.ErrFailedToParseSection
			}
			if s.encoding == format.EncodingI32 {
				out = append(out, Sample{TimeFS: t, Value: I32Value(int32(v))}) //nolint:gosec
			} else {
				out = append(out, Sample{TimeFS: t, Value: I64Value(v)})
			}
		}
	case format.EncodingF64:
		valDec := encoding.NewF64GorillaDecoder(valRaw)
		for i := 0; i < s.sampleCount; i++ {
			t, ok := tsDec.Next()
			if !ok {
				return nil, errs.ErrFailedToParseSection
			}
			v, ok := valDec.Next()
			if !ok {
				return nil, errs.ErrFailedToParseSection
			}
			out = append(out, Sample{TimeFS: t, Value: F64Value(v)})
		}
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownEncoding, s.encoding)
	}

	return out, nil
}
