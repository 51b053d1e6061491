package wavestore

import "github.com/wavebench/gwave/format"

// Option configures an Encoder at construction time, following mebo's
// functional-option (WithXxx) convention.
type Option func(*Encoder)

// WithTimestampCompression selects the codec applied to every signal's
// timestamp column. Defaults to CompressionS2.
func WithTimestampCompression(c format.CompressionType) Option {
	return func(e *Encoder) { e.tsCodec = c }
}

// WithValueCompression selects the codec applied to every signal's value
// column. Defaults to CompressionS2.
func WithValueCompression(c format.CompressionType) Option {
	return func(e *Encoder) { e.valCodec = c }
}
