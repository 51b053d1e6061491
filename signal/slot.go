// Package signal implements the physical signal slot table: the mapping
// from a wire-level signal handle to the contiguous run of physical ids
// and wire encoding the signal-section reader drives (spec.md §3, §4.6.1).
package signal

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/format"
	"github.com/wavebench/gwave/vhdltype"
)

// Handle is a 1-based positive integer naming a slot (spec.md glossary).
type Handle uint32

// Slot is an allocated physical signal entry: a contiguous run of physical
// ids sharing one wire encoding. LUT is non-nil only for slots backed by a
// NineValueBit/NineValueVec variable; it is the small resolution function
// spec.md §9 describes, applied by the signal-section reader to translate a
// raw wire byte into its canonical nine-value code before the sample ever
// reaches a Sink.
type Slot struct {
	Handle   Handle
	StartID  Handle
	EndID    Handle
	Encoding format.PhysicalEncoding
	LUT      *vhdltype.NineValueLUT
}

// Table tracks slot allocation across the hierarchy walk. Every leaf
// variable observes its signal handle; the first observation allocates a
// slot, later observations of the same handle are signal-sharing and are
// no-ops (spec.md §4.6.1).
type Table struct {
	maxID Handle
	slots map[Handle]*Slot
	order []Handle // first-allocation order, preserved through Compact
}

// NewTable creates a slot table accepting handles in [1, maxID].
func NewTable(maxID uint32) *Table {
	return &Table{maxID: Handle(maxID), slots: make(map[Handle]*Slot)}
}

// Observe records an occurrence of handle, allocating a new slot on first
// observation with StartID == EndID == handle and encoding U8 — the only
// encoding a bare leaf ever needs today (spec.md §4.6.1 notes that wider
// composite runs are a reserved extension, not yet exercised). Revisiting
// an already-allocated handle returns the existing slot unchanged.
func (t *Table) Observe(handle Handle) (*Slot, error) {
	if handle < 1 || handle > t.maxID {
		return nil, fmt.Errorf("%w: %d", errs.ErrSignalIDOutOfRange, handle)
	}
	if s, ok := t.slots[handle]; ok {
		return s, nil
	}

	s := &Slot{Handle: handle, StartID: handle, EndID: handle, Encoding: format.EncodingU8}
	t.slots[handle] = s
	t.order = append(t.order, handle)
	return s, nil
}

// Len reports how many distinct handles have been allocated so far.
func (t *Table) Len() int { return len(t.order) }

// Compact returns the allocated slots in first-allocation (declaration)
// order, dropping the handle space that was never observed. The returned
// slice is what the signal-section reader walks for every snapshot
// (spec.md §4.6.1, §4.8).
func (t *Table) Compact() []Slot {
	out := make([]Slot, len(t.order))
	for i, h := range t.order {
		out[i] = *t.slots[h]
	}
	return out
}

// Get returns the slot for handle, if one has been allocated.
func (t *Table) Get(handle Handle) (*Slot, bool) {
	s, ok := t.slots[handle]
	return s, ok
}

// SetLUT attaches a nine-value lookup table to an already-allocated slot.
// It is a no-op if handle has not been observed. Called by the hierarchy
// reader once per NineValueBit/NineValueVec variable, after Observe.
func (t *Table) SetLUT(handle Handle, lut vhdltype.NineValueLUT) {
	if s, ok := t.slots[handle]; ok {
		s.LUT = &lut
	}
}
