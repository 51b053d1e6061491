package section

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/endian"
)

func buildDirectoryStream(entries []DirEntry) []byte {
	var buf bytes.Buffer
	buf.WriteString("DIR\x00")
	buf.Write(binary.AppendUvarint(nil, uint64(len(entries))))
	for _, e := range entries {
		buf.WriteString(string(e.Tag))
		buf.Write(binary.AppendUvarint(nil, e.Offset))
	}
	buf.WriteString("EOD\x00")
	return buf.Bytes()
}

func TestProbeTailerFound(t *testing.T) {
	prefix := []byte("some preceding sections...")
	dir := buildDirectoryStream([]DirEntry{{Tag: TagSNP, Offset: 9}, {Tag: TagCYC, Offset: 42}})
	dirOffset := uint64(len(prefix))

	var buf bytes.Buffer
	buf.Write(prefix)
	buf.Write(dir)
	buf.WriteString("TAI\x00")
	binary.Write(&buf, binary.LittleEndian, dirOffset) //nolint:errcheck

	r := bytes.NewReader(buf.Bytes())
	directory, ok := ProbeTailer(r, endian.GetLittleEndianEngine())
	require.True(t, ok)
	require.Len(t, directory.Entries, 2)
	require.Equal(t, TagSNP, directory.Entries[0].Tag)
	require.Equal(t, uint64(9), directory.Entries[0].Offset)
}

func TestProbeTailerAbsent(t *testing.T) {
	r := bytes.NewReader([]byte("too short"))
	_, ok := ProbeTailer(r, endian.GetLittleEndianEngine())
	require.False(t, ok)
}

func TestProbeTailerMalformedPointer(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("garbage data padding to be long enough for a tailer block")
	buf.WriteString("XXXX")
	binary.Write(&buf, binary.LittleEndian, uint64(999999)) //nolint:errcheck

	r := bytes.NewReader(buf.Bytes())
	_, ok := ProbeTailer(r, endian.GetLittleEndianEngine())
	require.False(t, ok)
}
