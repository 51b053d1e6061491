package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU8ColumnRoundTrip(t *testing.T) {
	c := NewU8Column()
	want := []uint8{0, 1, 2, 8, 255}
	for _, v := range want {
		c.Append(v)
	}
	got := DecodeU8Column(c.Bytes())
	require.Equal(t, want, got)
}

func TestI64DeltaColumnRoundTrip(t *testing.T) {
	want := []int64{0, 5, 5, -3, 1000, -1000, 0}

	c := NewI64DeltaColumn()
	for _, v := range want {
		c.Append(v)
	}

	dec := NewI64DeltaDecoder(c.Bytes())
	for i, w := range want {
		got, ok := dec.Next()
		require.True(t, ok, "sample %d", i)
		require.Equal(t, w, got, "sample %d", i)
	}
	_, ok := dec.Next()
	require.False(t, ok)
}

func TestI32RawRoundTrip(t *testing.T) {
	want := []int32{0, 1, -1, math.MinInt32, math.MaxInt32}
	data := EncodeI32Raw(want)
	got := DecodeI32Raw(data)
	require.Equal(t, want, got)
}
