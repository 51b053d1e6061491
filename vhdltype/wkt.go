package vhdltype

import (
	"github.com/wavebench/gwave/internal/binstream"
)

// WellKnownTag is the small annotation tag set carried by the optional WKT
// section (spec.md §4.5).
type WellKnownTag uint8

const (
	WKTUnknown WellKnownTag = iota
	WKTBoolean
	WKTBit
	WKTStdULogic
)

// WellKnownAnnotations pairs type ids with their WKT tag.
type WellKnownAnnotations struct {
	byTypeID map[int]WellKnownTag
}

// Tag returns the annotation for typeID, or WKTUnknown if none was present.
func (w *WellKnownAnnotations) Tag(typeID int) WellKnownTag {
	if w == nil {
		return WKTUnknown
	}
	return w.byTypeID[typeID]
}

// DecodeWKT reads the WKT section body: a count followed by that many
// (type id, tag byte) pairs.
func DecodeWKT(r *binstream.Reader) (*WellKnownAnnotations, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	w := &WellKnownAnnotations{byTypeID: make(map[int]WellKnownTag, count)}
	for i := uint64(0); i < count; i++ {
		typeID, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		tag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		w.byTypeID[int(typeID)] = WellKnownTag(tag) //nolint:gosec
	}

	return w, nil
}

// CheckConsistency cross-checks every StdULogic annotation against the
// resolved type table: a type tagged StdULogic MUST already be a
// NineValueBit. Per spec.md §4.5 this is a debug-time assertion, not a
// parse error, so mismatches are reported rather than returned as a
// failure.
func (w *WellKnownAnnotations) CheckConsistency(types *Table) []int {
	if w == nil {
		return nil
	}

	var mismatches []int
	for typeID, tag := range w.byTypeID {
		if tag != WKTStdULogic {
			continue
		}
		ty, ok := types.Get(typeID)
		if !ok || ty.ResolveAlias().Kind != KindNineValueBit {
			mismatches = append(mismatches, typeID)
		}
	}
	return mismatches
}
