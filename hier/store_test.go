package hier

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/strtable"
	"github.com/wavebench/gwave/vhdltype"
)

func newTestStrings(names ...string) (*strtable.Table, map[string]int) {
	var buf bytes.Buffer
	buf.Write(binary.AppendUvarint(nil, 0))
	buf.Write(binary.AppendUvarint(nil, 0))
	r := binstream.New(bytes.NewReader(buf.Bytes()), endian.GetLittleEndianEngine())
	tbl, _ := strtable.Decode(r)

	ids := map[string]int{}
	for _, n := range names {
		ids[n] = tbl.Append(n)
	}
	return tbl, ids
}

func TestStoreBuildsFullNames(t *testing.T) {
	strs, id := newTestStrings("top", "u_cpu", "clk", "rst_n")
	store := NewStore(strs, ".")

	store.AddScope(id["top"], ScopeBlock)
	store.AddScope(id["u_cpu"], ScopeInstance)
	clkVar := store.AddVar(id["clk"], VarWire, DirectionImplicit, 1, nil, signal.Handle(1), nil, nil)
	require.NoError(t, store.PopScope())
	rstVar := store.AddVar(id["rst_n"], VarWire, DirectionImplicit, 1, nil, signal.Handle(2), nil, nil)
	require.NoError(t, store.PopScope())

	h, err := store.Finish()
	require.NoError(t, err)

	name, err := h.VarFullName(clkVar)
	require.NoError(t, err)
	require.Equal(t, "top.u_cpu.clk", name)

	name, err = h.VarFullName(rstVar)
	require.NoError(t, err)
	require.Equal(t, "top.rst_n", name)
}

func TestStorePopScopeUnderflow(t *testing.T) {
	strs, _ := newTestStrings()
	store := NewStore(strs, ".")
	require.Error(t, store.PopScope())
}

func TestFinishRejectsOpenScopes(t *testing.T) {
	strs, id := newTestStrings("top")
	store := NewStore(strs, ".")
	store.AddScope(id["top"], ScopeBlock)
	_, err := store.Finish()
	require.Error(t, err)
}

func TestGetUniqueSignalsVarsDedups(t *testing.T) {
	strs, id := newTestStrings("top", "a", "b")
	store := NewStore(strs, ".")
	store.AddScope(id["top"], ScopeBlock)
	store.AddVar(id["a"], VarWire, DirectionImplicit, 1, nil, signal.Handle(5), nil, nil)
	store.AddVar(id["b"], VarWire, DirectionImplicit, 1, nil, signal.Handle(5), nil, nil) // shares handle 5
	require.NoError(t, store.PopScope())

	h, err := store.Finish()
	require.NoError(t, err)

	unique := h.GetUniqueSignalsVars()
	require.Len(t, unique, 1)
}

func TestAddEnumTypeCachesByType(t *testing.T) {
	strs, _ := newTestStrings()
	store := NewStore(strs, ".")
	ty := &vhdltype.Type{Kind: vhdltype.KindEnum, Literals: []string{"RED", "GREEN", "BLUE"}}

	id1 := store.AddEnumType(ty)
	id2 := store.AddEnumType(ty)
	require.Equal(t, id1, id2)

	h, err := store.Finish()
	require.NoError(t, err)
	literals, ok := h.EnumLiterals(id1)
	require.True(t, ok)
	require.Equal(t, []string{"RED", "GREEN", "BLUE"}, literals)
}

func TestDuplicateFullNamesDetectsCollision(t *testing.T) {
	strs, id := newTestStrings("top", "a")
	store := NewStore(strs, ".")
	store.AddScope(id["top"], ScopeBlock)
	store.AddVar(id["a"], VarWire, DirectionImplicit, 1, nil, signal.Handle(1), nil, nil)
	require.NoError(t, store.PopScope())
	store.AddScope(id["top"], ScopeBlock) // a second, identically-named top-level scope
	store.AddVar(id["a"], VarWire, DirectionImplicit, 1, nil, signal.Handle(2), nil, nil)
	require.NoError(t, store.PopScope())

	h, err := store.Finish()
	require.NoError(t, err)
	groups := h.DuplicateFullNames()
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
}
