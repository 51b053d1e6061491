package hieread

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/strtable"
	"github.com/wavebench/gwave/vhdltype"
)

func appendUvarint(buf *bytes.Buffer, v uint64) { buf.Write(binary.AppendUvarint(nil, v)) }

func newTestStrings(names ...string) (*strtable.Table, map[string]int) {
	var buf bytes.Buffer
	appendUvarint(&buf, 0)
	appendUvarint(&buf, 0)
	r := binstream.New(bytes.NewReader(buf.Bytes()), endian.GetLittleEndianEngine())
	tbl, _ := strtable.Decode(r)

	ids := map[string]int{}
	for _, n := range names {
		ids[n] = tbl.Append(n)
	}
	return tbl, ids
}

// buildTypesDirect constructs a small, real type table: a NineValueBit at
// id 1, a plain I32 at id 2, and an I32 subtype with range [0,3] at id 3.
// It interns whatever names it needs directly onto strs/id, independent of
// whatever the caller already populated there.
func buildTypesDirect(strs *strtable.Table, id map[string]int) (*vhdltype.Table, error) {
	for _, n := range []string{"bit9", "'0'", "'1'", "'x'", "'z'", "'h'", "'u'", "'w'", "'l'", "'-'", "t_i32", "t_index"} {
		if _, ok := id[n]; !ok {
			id[n] = strs.Append(n)
		}
	}

	var buf bytes.Buffer
	appendUvarint(&buf, 3)

	buf.WriteByte(1) // rtikB2: bit9
	appendUvarint(&buf, uint64(id["bit9"]))
	appendUvarint(&buf, 9)
	for _, lit := range []string{"'0'", "'1'", "'x'", "'z'", "'h'", "'u'", "'w'", "'l'", "'-'"} {
		appendUvarint(&buf, uint64(id[lit]))
	}

	buf.WriteByte(3) // rtikI32: plain base
	appendUvarint(&buf, uint64(id["t_i32"]))

	buf.WriteByte(6) // rtikSubtypeScalar: t_index = t_i32[0:3]
	appendUvarint(&buf, uint64(id["t_index"]))
	appendUvarint(&buf, 2) // base type id 2 (I32)
	buf.WriteByte(byte(3)) // rangeKindI32, "to"
	appendVarintZZ(&buf, 0)
	appendVarintZZ(&buf, 3)

	buf.WriteByte(0) // type-table terminator

	r := binstream.New(bytes.NewReader(buf.Bytes()), endian.GetLittleEndianEngine())
	return vhdltype.Decode(r, strs)
}

func appendVarintZZ(buf *bytes.Buffer, v int64) {
	u := uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
	appendUvarint(buf, u)
}

func TestReadSectionBuildsHierarchy(t *testing.T) {
	strs, id := newTestStrings("top", "clk", "state")
	types, err := buildTypesDirect(strs, id)
	require.NoError(t, err)

	nineBit, ok := types.Get(1)
	require.True(t, ok)
	require.Equal(t, vhdltype.KindNineValueBit, nineBit.Kind)

	var buf bytes.Buffer
	appendUvarint(&buf, 1)  // expected scope count, advisory
	appendUvarint(&buf, 10) // max declared vars
	appendUvarint(&buf, 5)  // max signal id

	buf.WriteByte(byte(kindBlock))
	appendUvarint(&buf, uint64(id["top"]))

	buf.WriteByte(byte(kindSignal))
	appendUvarint(&buf, uint64(id["clk"]))
	appendUvarint(&buf, 1) // type id 1: NineValueBit
	appendUvarint(&buf, 1) // handle

	buf.WriteByte(byte(kindEndOfScope))
	buf.WriteByte(byte(kindEnd))

	r := binstream.New(bytes.NewReader(buf.Bytes()), endian.GetLittleEndianEngine())
	store := hier.NewStore(strs, ".")
	result, err := ReadSection(r, store, types)
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	require.Equal(t, uint32(1), uint32(result.Slots[0].Handle))

	vars := result.Hierarchy.GetUniqueSignalsVars()
	require.Len(t, vars, 1)
	name, err := result.Hierarchy.VarFullName(vars[0].ID)
	require.NoError(t, err)
	require.Equal(t, "top.clk", name)
}

func TestReadSectionRejectsVarOverrun(t *testing.T) {
	strs, id := newTestStrings("top", "clk", "rst")
	types, err := buildTypesDirect(strs, id)
	require.NoError(t, err)

	var buf bytes.Buffer
	appendUvarint(&buf, 1)
	appendUvarint(&buf, 1) // max declared vars = 1
	appendUvarint(&buf, 5)

	buf.WriteByte(byte(kindSignal))
	appendUvarint(&buf, uint64(id["clk"]))
	appendUvarint(&buf, 1)
	appendUvarint(&buf, 1)

	buf.WriteByte(byte(kindSignal))
	appendUvarint(&buf, uint64(id["rst"]))
	appendUvarint(&buf, 1)
	appendUvarint(&buf, 2)

	buf.WriteByte(byte(kindEnd))

	r := binstream.New(bytes.NewReader(buf.Bytes()), endian.GetLittleEndianEngine())
	store := hier.NewStore(strs, ".")
	_, err = ReadSection(r, store, types)
	require.Error(t, err)
}
