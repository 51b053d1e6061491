package gwave

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/section"
	"github.com/wavebench/gwave/wavestore"
)

func headerBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(section.Signature)
	buf.WriteByte(1)                      // version
	buf.WriteByte(1)                      // little-endian
	buf.WriteByte(4)                      // word length
	buf.Write([]byte{0, 0, 0, 0})         // word offset
	return buf.Bytes()
}

func appendUvarint(buf *bytes.Buffer, v uint64) { buf.Write(binary.AppendUvarint(nil, v)) }
func appendVarint(buf *bytes.Buffer, v int64) {
	u := uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
	appendUvarint(buf, u)
}

func zeroHeader(buf *bytes.Buffer) { buf.Write([]byte{0, 0, 0, 0}) }

func TestReadFromBytesMinimalEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(headerBytes())

	buf.WriteString("STR\x00")
	zeroHeader(&buf)
	appendUvarint(&buf, 0) // count
	appendUvarint(&buf, 0) // size hint

	buf.WriteString("TYP\x00")
	zeroHeader(&buf)
	appendUvarint(&buf, 0) // count
	buf.WriteByte(0)       // terminator

	buf.WriteString("HIE\x00")
	zeroHeader(&buf)
	appendUvarint(&buf, 0) // advisory scope count
	appendUvarint(&buf, 0) // max declared vars
	appendUvarint(&buf, 0) // max signal id
	buf.WriteByte(0)       // kindEnd

	buf.WriteString("EOH\x00")
	zeroHeader(&buf)

	buf.WriteString("TAI\x00")

	w, err := ReadFromBytes(buf.Bytes())
	require.NoError(t, err)
	require.Empty(t, w.Hierarchy().GetUniqueSignalsVars())
}

func TestReadFromBytesRejectsGzipMagic(t *testing.T) {
	data := append([]byte{0x1F, 0x8B}, headerBytes()[2:]...)
	_, err := ReadFromBytes(data)
	require.Error(t, err)
}

func TestReadFromBytesSingleStdULogicSignal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(headerBytes())

	buf.WriteString("STR\x00")
	zeroHeader(&buf)
	// one name "clk" plus the 9 literal strings in std_ulogic's real GHDL
	// declaration order (U,X,0,1,Z,W,L,H,-), all unshared (prefix 0). This
	// is deliberately NOT canonical order, so the test only passes if the
	// nine-value LUT is actually applied rather than identity-passed-through.
	names := []string{"clk", "'U'", "'X'", "'0'", "'1'", "'Z'", "'W'", "'L'", "'H'", "'-'"}
	appendUvarint(&buf, uint64(len(names)))
	appendUvarint(&buf, 0) // size hint
	for _, n := range names {
		buf.WriteString(n)
		buf.WriteByte(0) // terminator, prefix length 0
	}

	buf.WriteString("TYP\x00")
	zeroHeader(&buf)
	appendUvarint(&buf, 1) // one type
	buf.WriteByte(2)       // rtikE8
	appendUvarint(&buf, 1) // name id: "clk" is id 1 (0 is sentinel)
	appendUvarint(&buf, 9) // literal count
	for i := 2; i <= 10; i++ {
		appendUvarint(&buf, uint64(i))
	}
	buf.WriteByte(0) // terminator

	buf.WriteString("HIE\x00")
	zeroHeader(&buf)
	appendUvarint(&buf, 1) // advisory scope count
	appendUvarint(&buf, 1) // max declared vars
	appendUvarint(&buf, 1) // max signal id
	buf.WriteByte(10)      // kindSignal
	appendUvarint(&buf, 1) // name id "clk"
	appendUvarint(&buf, 1) // type id 1
	appendUvarint(&buf, 1) // handle 1
	buf.WriteByte(0)       // kindEnd

	buf.WriteString("EOH\x00")
	zeroHeader(&buf)

	buf.WriteString("SNP\x00")
	zeroHeader(&buf)
	binary.Write(&buf, binary.LittleEndian, uint64(0)) //nolint:errcheck
	buf.WriteByte(3)                                   // wire index 3 ("'1'") -> canonical code 1
	buf.WriteString("ESN\x00")

	buf.WriteString("CYC\x00")
	binary.Write(&buf, binary.LittleEndian, uint64(10)) //nolint:errcheck
	appendUvarint(&buf, 1)                              // cursor -> slot 0
	buf.WriteByte(2)                                    // wire index 2 ("'0'") -> canonical code 0
	appendUvarint(&buf, 0)                              // end time step
	appendVarint(&buf, -1)                              // end CYC section
	buf.WriteString("ECY\x00")

	buf.WriteString("TAI\x00")

	w, err := ReadFromBytes(buf.Bytes())
	require.NoError(t, err)

	vars := w.Hierarchy().GetUniqueSignalsVars()
	require.Len(t, vars, 1)

	sig, ok := w.GetSignal(vars[0].SignalHandle)
	require.True(t, ok)
	require.Equal(t, []wavestore.Sample{
		{TimeFS: 0, Value: wavestore.U8Value(1)},
		{TimeFS: 10, Value: wavestore.U8Value(0)},
	}, sig.Samples)
}
