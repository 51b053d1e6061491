package signal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavebench/gwave/format"
)

func TestObserveAllocatesOnFirstSight(t *testing.T) {
	tbl := NewTable(10)
	s1, err := tbl.Observe(3)
	require.NoError(t, err)
	require.Equal(t, Handle(3), s1.StartID)
	require.Equal(t, Handle(3), s1.EndID)
	require.Equal(t, format.EncodingU8, s1.Encoding)
	require.Equal(t, 1, tbl.Len())
}

func TestObserveSharesOnRevisit(t *testing.T) {
	tbl := NewTable(10)
	s1, err := tbl.Observe(5)
	require.NoError(t, err)
	s2, err := tbl.Observe(5)
	require.NoError(t, err)
	require.Same(t, s1, s2)
	require.Equal(t, 1, tbl.Len())
}

func TestObserveOutOfRange(t *testing.T) {
	tbl := NewTable(4)
	_, err := tbl.Observe(0)
	require.Error(t, err)
	_, err = tbl.Observe(5)
	require.Error(t, err)
}

func TestCompactPreservesDeclarationOrder(t *testing.T) {
	tbl := NewTable(10)
	_, _ = tbl.Observe(7)
	_, _ = tbl.Observe(2)
	_, _ = tbl.Observe(9)
	_, _ = tbl.Observe(7) // revisit, should not reorder or duplicate

	slots := tbl.Compact()
	require.Len(t, slots, 3)
	require.Equal(t, []Handle{7, 2, 9}, []Handle{slots[0].Handle, slots[1].Handle, slots[2].Handle})
}
