package compress

// ZstdCompressor compresses encoded signal columns with Zstandard, trading
// compression speed for ratio. Best suited for archived waveform dumps that
// are decoded rarely relative to how often they're stored.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
