package vhdltype

import (
	"fmt"
	"math"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/strtable"
)

// defaultI32Range is used as the base range for an I32 subtype-scalar when
// the base I32 itself carries no declared constraint (spec.md §4.4.1).
var defaultI32Range = Range{Lo: math.MinInt32, Hi: math.MaxInt32}

// Table is the decoded, 1-based type table (spec.md §3, §4.4).
type Table struct {
	types []*Type // index 0 unused; types[id] for id in [1, len-1]
}

// Len returns the number of entries, not counting the unused id-0 slot.
func (t *Table) Len() int { return len(t.types) - 1 }

// Get returns the type for id, or false if id is out of [1, Len()].
func (t *Table) Get(id int) (*Type, bool) {
	if id < 1 || id >= len(t.types) {
		return nil, false
	}
	return t.types[id], true
}

func (t *Table) mustGet(id int) (*Type, error) {
	ty, ok := t.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: type id %d", errs.ErrTypeIDOutOfRange, id)
	}
	return ty, nil
}

func readName(r *binstream.Reader, strs *strtable.Table) (string, error) {
	id, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	name, ok := strs.Get(int(id)) //nolint:gosec
	if !ok {
		return "", fmt.Errorf("%w: %d", errs.ErrStringIDOutOfRange, id)
	}
	return name, nil
}

func readLiterals(r *binstream.Reader, strs *strtable.Table) ([]string, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	literals := make([]string, count)
	for i := range literals {
		lit, err := readName(r, strs)
		if err != nil {
			return nil, err
		}
		literals[i] = lit
	}
	return literals, nil
}

// Decode reads the TYP section body: a count N, then N kind-tagged entries,
// then a mandatory terminating zero byte (spec.md §4.4).
func Decode(r *binstream.Reader, strs *strtable.Table) (*Table, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	t := &Table{types: make([]*Type, 1, count+1)}
	for id := 1; uint64(id) <= count; id++ {
		kindByte, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		name, err := readName(r, strs)
		if err != nil {
			return nil, err
		}

		ty, err := t.decodeEntry(r, strs, id, name, rtik(kindByte))
		if err != nil {
			return nil, fmt.Errorf("type id %d: %w", id, err)
		}
		ty.ID = id
		t.types = append(t.types, ty)
	}

	term, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if term != typeTableTerminator {
		return nil, errs.ErrMissingTypeTerminator
	}

	return t, nil
}

func (t *Table) decodeEntry(r *binstream.Reader, strs *strtable.Table, id int, name string, kind rtik) (*Type, error) {
	switch kind {
	case rtikB2, rtikE8:
		literals, err := readLiterals(r, strs)
		if err != nil {
			return nil, err
		}
		if lut, ok := tryNineValue(literals); ok {
			return &Type{Kind: KindNineValueBit, Name: name, LUT: lut}, nil
		}
		return &Type{Kind: KindEnum, Name: name, Literals: literals}, nil

	case rtikI32:
		return &Type{Kind: KindI32, Name: name}, nil
	case rtikI64:
		return &Type{Kind: KindI64, Name: name}, nil
	case rtikF64:
		return &Type{Kind: KindF64, Name: name}, nil

	case rtikSubtypeScalar:
		baseID, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		base, err := t.mustGet(int(baseID)) //nolint:gosec
		if err != nil {
			return nil, err
		}
		rng, err := decodeRange(r)
		if err != nil {
			return nil, err
		}
		return foldSubtypeScalar(name, base, rng)

	case rtikTypeArray:
		elemID, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		elem, err := t.mustGet(int(elemID)) //nolint:gosec
		if err != nil {
			return nil, err
		}
		dimCount, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		if dimCount != 1 {
			return nil, fmt.Errorf("%w: multi-dimensional arrays", errs.ErrUnimplementedType)
		}
		dimID, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		dim, err := t.mustGet(int(dimID)) //nolint:gosec
		if err != nil {
			return nil, err
		}
		return foldTypeArray(name, elem, dim), nil

	case rtikSubtypeArray:
		baseID, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		base, err := t.mustGet(int(baseID)) //nolint:gosec
		if err != nil {
			return nil, err
		}
		rng, err := decodeRange(r)
		if err != nil {
			return nil, err
		}
		return foldSubtypeArray(name, base, rng)

	case rtikTypeRecord:
		fieldCount, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		fields := make([]Field, fieldCount)
		for i := range fields {
			fieldName, err := readName(r, strs)
			if err != nil {
				return nil, err
			}
			fieldTypeID, err := r.ReadUvarint()
			if err != nil {
				return nil, err
			}
			fieldType, err := t.mustGet(int(fieldTypeID)) //nolint:gosec
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: fieldName, Type: fieldType.ResolveAlias()}
		}
		return &Type{Kind: KindRecord, Name: name, Fields: fields}, nil

	default:
		return nil, fmt.Errorf("%w: rtik %#x", errs.ErrFailedToParseKindTag, kind)
	}
}

// foldSubtypeScalar implements spec.md §4.4.1.
func foldSubtypeScalar(name string, base *Type, rng Range) (*Type, error) {
	base = base.ResolveAlias()
	switch base.Kind {
	case KindEnum:
		if rng.Lo == 0 && rng.Hi == int64(len(base.Literals))-1 {
			return &Type{Kind: KindTypeAlias, Name: name, Base: base}, nil
		}
		return nil, fmt.Errorf("%w: narrowed enum subtype", errs.ErrUnimplementedType)

	case KindNineValueBit:
		if rng.Lo == 0 && rng.Hi == 8 {
			return &Type{Kind: KindTypeAlias, Name: name, Base: base}, nil
		}
		return nil, fmt.Errorf("%w: narrowed nine-value-bit subtype", errs.ErrUnimplementedType)

	case KindI32:
		baseRange := defaultI32Range
		if base.IntRange != nil {
			baseRange = *base.IntRange
		}
		if !rng.Subset(baseRange) {
			return nil, errs.ErrRangeNotSubset
		}
		r := rng
		return &Type{Kind: KindI32, Name: name, IntRange: &r}, nil

	default:
		return nil, fmt.Errorf("%w: subtype-scalar over %s", errs.ErrUnimplementedType, base.Kind)
	}
}

// foldSubtypeArray implements spec.md §4.4.2.
func foldSubtypeArray(name string, base *Type, rng Range) (*Type, error) {
	base = base.ResolveAlias()
	if base.Kind != KindNineValueVec {
		return nil, fmt.Errorf("%w: subtype-array over %s", errs.ErrUnimplementedType, base.Kind)
	}
	if !rng.Subset(base.VecRange) {
		return nil, errs.ErrRangeNotSubset
	}
	return &Type{Kind: KindNineValueVec, Name: name, LUT: base.LUT, VecRange: rng}, nil
}

// foldTypeArray implements spec.md §4.4.4's array-folding rule: a
// NineValueBit element with an integer-ranged index folds to a dense
// NineValueVec; anything else stays a generic Array. The index type must
// itself carry a declared IntRange for its width to be known — without
// one there is no concrete element count to fold into, so the result
// falls back to Array even when the index type is nominally integral.
func foldTypeArray(name string, elem, dim *Type) *Type {
	elem = elem.ResolveAlias()
	dim = dim.ResolveAlias()

	if elem.Kind == KindNineValueBit && (dim.Kind == KindI32 || dim.Kind == KindI64) && dim.IntRange != nil {
		return &Type{Kind: KindNineValueVec, Name: name, LUT: elem.LUT, VecRange: *dim.IntRange}
	}

	r := dim.IntRange
	return &Type{Kind: KindArray, Name: name, Elem: elem, ArrayRange: r}
}
