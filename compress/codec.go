// Package compress provides the compression codecs the reference wave-store
// encoder (wavestore) applies to a signal's encoded timestamp and value
// columns. It has nothing to do with the gzip/bzip2 magic-byte check the
// G-format header performs on its *input* — that check only ever rejects,
// it never decompresses (spec.md §4.2, §1 Non-goals).
package compress

import (
	"fmt"

	"github.com/wavebench/gwave/format"
)

// Compressor compresses an already-encoded column (timestamps or values).
type Compressor interface {
	// Compress returns a compressed form of data. The input slice is left
	// unmodified. NoOpCompressor returns data itself; the other codecs
	// return a newly-allocated slice.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the decompressed form of data. NoOpCompressor
	// returns data itself; the other codecs return a newly-allocated slice.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of compressing one column, surfaced
// through Waveform.PrintBackendStatistics.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize; values below 1.0
// indicate the column shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// builtinCodecs are shared codec instances, one per compression type. Every
// concrete Codec in this package is a stateless value type (any pooling it
// needs — lz4.Compressor, the pure-Go zstd encoder/decoder — is itself a
// package-level sync.Pool), so a single shared instance per type is safe to
// reuse across every call rather than allocating a fresh struct per column.
var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// CreateCodec builds a Codec for the requested compression type. target
// names the column being compressed (timestamp/value), used only to enrich
// the error message on an invalid type.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
	return codec, nil
}
