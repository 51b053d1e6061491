package vhdltype

// Direction records whether an index range counts up or down in the
// source, independent of its ascending [Lo, Hi] storage (spec.md §4.4.4).
type Direction uint8

const (
	To     Direction = iota // ascending in the source: range(lo, hi)
	Downto                  // descending in the source: range(hi downto lo)
)

// rangeKind selects the numeric encoding of a range's two endpoints on the
// wire. The low 7 bits of the range's leading byte carry one of these; bit
// 7 carries the Direction.
type rangeKind uint8

const (
	rangeKindB2  rangeKind = iota + 1 // two raw bytes
	rangeKindE8                      // two raw bytes (same shape as B2)
	rangeKindI32                     // two signed varints
	rangeKindI64                     // two signed varints
	rangeKindP32                     // two signed varints
	rangeKindP64                     // two signed varints
	rangeKindF64                     // two 8-byte floats; unimplemented
)

// Range is an inclusive integer index range. Lo and Hi are always stored
// in ascending order regardless of Dir; Dir only affects iteration order
// and presentation.
type Range struct {
	Lo, Hi int64
	Dir    Direction
}

// Len returns the number of elements the range covers.
func (r Range) Len() int64 { return r.Hi - r.Lo + 1 }

// Subset reports whether r is fully contained within base, inclusive on
// both ends of the ascending projection (spec.md §4.4.4).
func (r Range) Subset(base Range) bool {
	return r.Lo >= base.Lo && r.Hi <= base.Hi
}
