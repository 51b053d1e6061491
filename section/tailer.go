package section

import (
	"io"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/internal/binstream"
)

// TailerSize is the fixed size of the trailing pointer block: a 4-byte TAI
// tag followed by an 8-byte absolute offset to the directory section.
const TailerSize = 12

// DirEntry is one (tag, offset) pair inside a directory section.
type DirEntry struct {
	Tag    Tag
	Offset uint64
}

// Directory is the parsed, validated contents of an opportunistic directory
// section reached via the tailer pointer. It is informational only: the
// main decode pass always proceeds sequentially from end-of-header,
// regardless of whether a directory was found (spec.md §4.2).
type Directory struct {
	Entries []DirEntry
}

// ProbeTailer attempts to read the 12-byte tailer at the end of the stream
// and, if present, the directory it points to. Any failure — a seek error,
// a bad tag, a malformed directory — is demoted to (Directory{}, false)
// rather than propagated, per spec.md §5's "no directory available" rule.
// The read cursor is left wherever the last successful operation left it;
// callers that need cursor stability should seek back themselves.
func ProbeTailer(r io.ReadSeeker, engine endian.EndianEngine) (Directory, bool) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil || end < TailerSize {
		return Directory{}, false
	}

	if _, err := r.Seek(-TailerSize, io.SeekEnd); err != nil {
		return Directory{}, false
	}

	br := binstream.New(r, engine)
	tag, err := ReadTag(br)
	if err != nil || tag != TagTAI {
		return Directory{}, false
	}

	offset, err := br.ReadU64()
	if err != nil || int64(offset) >= end { //nolint:gosec
		return Directory{}, false
	}

	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil { //nolint:gosec
		return Directory{}, false
	}

	dr := binstream.New(r, engine)
	dirTag, err := ReadTag(dr)
	if err != nil || dirTag != TagDIR {
		return Directory{}, false
	}

	count, err := dr.ReadUvarint()
	if err != nil {
		return Directory{}, false
	}

	entries := make([]DirEntry, 0, count)
	for range count {
		entryTag, err := ReadTag(dr)
		if err != nil {
			return Directory{}, false
		}
		off, err := dr.ReadUvarint()
		if err != nil {
			return Directory{}, false
		}
		entries = append(entries, DirEntry{Tag: entryTag, Offset: off})
	}

	if err := ExpectEndTag(dr, EndDIR); err != nil {
		return Directory{}, false
	}

	return Directory{Entries: entries}, true
}
