package vhdltype

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/binstream"
)

// rtik is the 1-byte on-disk type/kind tag (spec.md glossary: RTIK). The
// concrete byte assignments below are this decoder's own wire convention;
// the spec only names the kinds, not their encoding.
type rtik uint8

const (
	rtikB2            rtik = 1
	rtikE8            rtik = 2
	rtikI32           rtik = 3
	rtikI64           rtik = 4
	rtikF64           rtik = 5
	rtikSubtypeScalar rtik = 6
	rtikTypeArray     rtik = 7
	rtikSubtypeArray  rtik = 8
	rtikTypeRecord    rtik = 9
)

// typeTableTerminator is the single zero byte mandatory after the last
// type-table entry (spec.md §4.4).
const typeTableTerminator = 0

const (
	rangeDirectionMask = 0x80
	rangeKindMask      = 0x7F
)

// decodeRange reads one index range: a 1-byte kind/direction tag followed
// by two endpoints encoded per rangeKind (spec.md §4.4.4).
func decodeRange(r *binstream.Reader) (Range, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return Range{}, err
	}

	dir := To
	if tag&rangeDirectionMask != 0 {
		dir = Downto
	}

	var a, b int64
	switch rangeKind(tag & rangeKindMask) {
	case rangeKindB2, rangeKindE8:
		lo, err := r.ReadByte()
		if err != nil {
			return Range{}, err
		}
		hi, err := r.ReadByte()
		if err != nil {
			return Range{}, err
		}
		a, b = int64(lo), int64(hi)
	case rangeKindI32, rangeKindI64, rangeKindP32, rangeKindP64:
		a, err = r.ReadVarint()
		if err != nil {
			return Range{}, err
		}
		b, err = r.ReadVarint()
		if err != nil {
			return Range{}, err
		}
	case rangeKindF64:
		return Range{}, fmt.Errorf("%w: float-valued ranges", errs.ErrUnimplementedType)
	default:
		return Range{}, fmt.Errorf("%w: unknown range kind %#x", errs.ErrFailedToParseSection, tag&rangeKindMask)
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Lo: lo, Hi: hi, Dir: dir}, nil
}
