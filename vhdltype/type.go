// Package vhdltype materialises the G-format's type table into the VHDL
// type graph described by spec.md §3 and §4.4: a 1-based table of tagged
// values folded from the on-disk RTIK payloads. It is deliberately kept
// independent of format.PhysicalEncoding — the wire encoding a leaf signal
// resolves to is a separate, small resolution step (spec.md §9) performed
// by the hierarchy section reader, not by this package.
package vhdltype

// Kind discriminates the tagged union a Type holds.
type Kind uint8

const (
	KindNineValueBit Kind = iota + 1
	KindNineValueVec
	KindTypeAlias
	KindI32
	KindI64
	KindF64
	KindEnum
	KindArray
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNineValueBit:
		return "NineValueBit"
	case KindNineValueVec:
		return "NineValueVec"
	case KindTypeAlias:
		return "TypeAlias"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindF64:
		return "F64"
	case KindEnum:
		return "Enum"
	case KindArray:
		return "Array"
	case KindRecord:
		return "Record"
	default:
		return "Unknown"
	}
}

// NineValueLUT maps a raw enum literal index (as read off the wire) to its
// canonical 9-state numeric code (0-8, indexing '0','1','x','z','h','u','w',
// 'l','-' in that order) — the same representation bit_char_to_num produces
// in the original GHW reader.
type NineValueLUT [9]byte

// Field is one named member of a Record type.
type Field struct {
	Name string
	Type *Type
}

// Type is one entry of the type table: a tagged union over the nine VHDL
// type shapes spec.md §3 enumerates. Only the fields relevant to Kind are
// populated; the rest are left at their zero value.
type Type struct {
	ID   int
	Kind Kind
	Name string

	LUT      NineValueLUT // KindNineValueBit, KindNineValueVec
	VecRange Range        // KindNineValueVec

	Base *Type // KindTypeAlias

	IntRange *Range // KindI32, KindI64, KindF64: optional constraining range

	Literals []string // KindEnum

	Elem       *Type  // KindArray
	ArrayRange *Range // KindArray: optional index range

	Fields []Field // KindRecord
}

// ResolveAlias follows at most one TypeAlias hop, per the depth-1 invariant
// enforced at insert time. Any other kind is returned unchanged.
func (t *Type) ResolveAlias() *Type {
	if t.Kind == KindTypeAlias && t.Base != nil {
		return t.Base
	}
	return t
}
