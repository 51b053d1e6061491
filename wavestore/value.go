package wavestore

import "github.com/wavebench/gwave/format"

// Value is a tagged union over the four physical signal encodings, matching
// the "value is a tagged union over the four encodings" wording of spec.md
// §4.9. Exactly one of U8/I64/F64 is meaningful, selected by Encoding.
type Value struct {
	Encoding format.PhysicalEncoding
	U8       uint8
	I64      int64
	F64      float64
}

// U8Value wraps a nine-value/enum byte sample.
func U8Value(v uint8) Value { return Value{Encoding: format.EncodingU8, U8: v} }

// I32Value wraps a 32-bit integer sample, widened to the I64 column.
func I32Value(v int32) Value { return Value{Encoding: format.EncodingI32, I64: int64(v)} }

// I64Value wraps a 64-bit integer sample.
func I64Value(v int64) Value { return Value{Encoding: format.EncodingI64, I64: v} }

// F64Value wraps a floating-point sample.
func F64Value(v float64) Value { return Value{Encoding: format.EncodingF64, F64: v} }

// Sample pairs a decoded Value with its femtosecond timestamp.
type Sample struct {
	TimeFS int64
	Value  Value
}
