// Package strtable decodes the G-format's STR section: a prefix-compressed
// string dictionary where each entry shares a run of leading bytes with its
// immediate predecessor. Decoding walks the entries in order, so random
// access to an arbitrary id requires the whole section to have been
// decoded first — there is no seek-by-id shortcut.
package strtable

import (
	"strings"
	"unicode/utf8"

	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/internal/pool"
)

// AnonString is the sentinel occupying id 0, used for anonymous or
// unnamed entities throughout the hierarchy.
const AnonString = "<anon>"

// isTerminator reports whether b closes the current string: the two ranges
// [0,31] and [128,159] both have bits 5 and 6 clear, with bit 7 marking
// whether the prefix-length varint continues and the low 5 bits carrying
// its next 5 bits.
func isTerminator(b byte) bool { return b&0x60 == 0 }

// Table is the decoded string dictionary, addressable by 0-based id.
type Table struct {
	strings []string
}

// Len returns the number of entries, including the sentinel at id 0.
func (t *Table) Len() int { return len(t.strings) }

// Get returns the string at id, or false if id is out of range.
func (t *Table) Get(id int) (string, bool) {
	if id < 0 || id >= len(t.strings) {
		return "", false
	}
	return t.strings[id], true
}

// Append adds s as a new entry and returns its id. Used by the hierarchy
// store to intern names that arise outside the STR section proper.
func (t *Table) Append(s string) int {
	t.strings = append(t.strings, s)
	return len(t.strings) - 1
}

// Decode reads the STR section body: a count, an advisory total-size hint,
// then that many prefix-compressed entries (spec.md §4.3).
func Decode(r *binstream.Reader) (*Table, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadUvarint(); err != nil { // total-size hint, advisory only
		return nil, err
	}

	t := &Table{strings: make([]string, 1, count+1)}
	t.strings[0] = AnonString

	// Every entry's bytes accumulate in one pooled scratch buffer instead of
	// a fresh allocation per string: only the shared-prefix tail survives
	// between entries, so the buffer is truncated rather than reallocated.
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	for i := uint64(0); i < count; i++ {
		for {
			b, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			if isTerminator(b) {
				prefixLen, err := readPrefixLength(r, b)
				if err != nil {
					return nil, err
				}
				t.strings = append(t.strings, toValidUTF8(scratch.Bytes()))
				if int(prefixLen) > scratch.Len() {
					prefixLen = uint(scratch.Len()) //nolint:gosec
				}
				scratch.B = scratch.B[:prefixLen]
				break
			}
			scratch.Grow(1)
			_ = scratch.WriteByte(b)
		}
	}

	return t, nil
}

// readPrefixLength reconstructs the shared-prefix length from the
// terminator byte first, continuing with 5 bits per byte while the
// continuation bit (bit 7) remains set (spec.md §4.3 step 3).
func readPrefixLength(r *binstream.Reader, first byte) (uint, error) {
	length := uint(first & 0x1F)
	shift := uint(5)
	cur := first
	for cur&0x80 != 0 {
		next, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		length |= uint(next&0x1F) << shift
		shift += 5
		cur = next
	}
	return length, nil
}

func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
