// Package format holds the small value types shared between the decoder and
// the reference wave-store sink: the four physical wire encodings a signal
// can resolve to, and the codec tags the wave-store columns are compressed
// with.
package format

type (
	// PhysicalEncoding is the wire encoding a signal slot's samples use,
	// independent of the VHDL type that produced it (spec.md §3).
	PhysicalEncoding uint8

	// CompressionType selects the codec a wave-store column is compressed
	// with. It has no relation to the G-format input compression check
	// (gzip/bzip2 magics), which is always rejected rather than decoded.
	CompressionType uint8
)

const (
	EncodingU8  PhysicalEncoding = 0x1 // 2-valued bit or 8-valued enum, one byte per sample.
	EncodingI32 PhysicalEncoding = 0x2
	EncodingI64 PhysicalEncoding = 0x3
	EncodingF64 PhysicalEncoding = 0x4

	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (e PhysicalEncoding) String() string {
	switch e {
	case EncodingU8:
		return "U8"
	case EncodingI32:
		return "I32"
	case EncodingI64:
		return "I64"
	case EncodingF64:
		return "F64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
