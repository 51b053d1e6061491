package binstream

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/errs"
)

func TestReadFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-7))  //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, uint32(42)) //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, int64(-123456789012)) //nolint:errcheck
	binary.Write(&buf, binary.LittleEndian, 3.5)        //nolint:errcheck

	r := New(&buf, endian.GetLittleEndianEngine())

	i32, err := r.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(-7), i32)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(42), u32)

	i64, err := r.ReadI64()
	require.NoError(t, err)
	require.Equal(t, int64(-123456789012), i64)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.InDelta(t, 3.5, f64, 0.0001)
}

func TestReadPositiveU32RejectsNegative(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-1)) //nolint:errcheck

	r := New(&buf, endian.GetLittleEndianEngine())
	_, err := r.ReadPositiveU32()
	require.ErrorIs(t, err, errs.ErrExpectedPositiveInteger)
}

func TestVarintRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(binary.AppendUvarint(nil, 300))

	r := New(&buf, endian.GetLittleEndianEngine())
	v, err := r.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(300), v)
}

func TestSignedVarintZigZag(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -127, 1 << 40, -(1 << 40)} {
		zigzag := uint64(v<<1) ^ uint64(v>>63)

		var buf bytes.Buffer
		buf.Write(binary.AppendUvarint(nil, zigzag))

		r := New(&buf, endian.GetLittleEndianEngine())
		got, err := r.ReadVarint()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
