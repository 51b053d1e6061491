package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/format"
)

func TestCreateCodecRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "value")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCreateCodecInvalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "value")
	require.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	s := CompressionStats{OriginalSize: 100, CompressedSize: 40}
	require.InDelta(t, 0.4, s.CompressionRatio(), 0.0001)
	require.InDelta(t, 60.0, s.SpaceSavings(), 0.0001)
}

func TestCompressionStatsZeroOriginal(t *testing.T) {
	s := CompressionStats{}
	require.Equal(t, 0.0, s.CompressionRatio())
}
