package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/binstream"
)

func validHeaderBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(Signature)
	buf.WriteByte(1) // version
	buf.WriteByte(1) // little-endian
	buf.WriteByte(4) // word length, reserved nibble zero
	buf.Write([]byte{0, 0, 0, 0}) // word offset = 0
	return buf.Bytes()
}

func TestParseHeaderValid(t *testing.T) {
	r := binstream.New(bytes.NewReader(validHeaderBytes()), endian.GetLittleEndianEngine())
	h, err := ParseHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint8(1), h.Version)
	require.Equal(t, uint8(1), h.Endianness)
	require.Equal(t, uint8(4), h.WordLength)
}

func TestParseHeaderGzipMagic(t *testing.T) {
	data := append([]byte{0x1F, 0x8B}, validHeaderBytes()[2:]...)
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnsupportedGzip)
}

func TestParseHeaderBzip2Magic(t *testing.T) {
	data := append([]byte{'B', 'Z'}, validHeaderBytes()[2:]...)
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnsupportedBzip2)
}

func TestParseHeaderBadMagic(t *testing.T) {
	data := append([]byte("XX"), validHeaderBytes()[2:]...)
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnexpectedHeaderMagic)
}

func TestParseHeaderBadVersion(t *testing.T) {
	data := validHeaderBytes()
	data[len(Signature)] = 2
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnexpectedHeader)
}

func TestParseHeaderBadEndianness(t *testing.T) {
	data := validHeaderBytes()
	data[len(Signature)+1] = 9
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnexpectedHeader)
}

func TestParseHeaderReservedNibbleNonZero(t *testing.T) {
	data := validHeaderBytes()
	data[len(Signature)+2] = 0xF4
	r := binstream.New(bytes.NewReader(data), endian.GetLittleEndianEngine())
	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnexpectedHeader)
}
