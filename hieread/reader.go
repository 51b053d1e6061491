package hieread

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/vhdltype"
)

// Result bundles the two products of a hierarchy-section walk: the frozen
// hierarchy and the compacted signal slot table that the signal-section
// reader drives against (spec.md §4.6, last paragraph).
type Result struct {
	Hierarchy *hier.Hierarchy
	Slots     []signal.Slot
}

// ReadSection walks the HIE section body: a 3-field advisory/enforced
// header, then a sequence of kind-tagged records terminated by kindEnd.
func ReadSection(r *binstream.Reader, store *hier.Store, types *vhdltype.Table) (Result, error) {
	if _, err := r.ReadUvarint(); err != nil { // expected scope count, advisory
		return Result{}, err
	}
	maxDeclaredVars, err := r.ReadUvarint()
	if err != nil {
		return Result{}, err
	}
	maxSignalID, err := r.ReadUvarint()
	if err != nil {
		return Result{}, err
	}

	slots := signal.NewTable(uint32(maxSignalID)) //nolint:gosec
	var declaredVars uint64

	for {
		kindByte, err := r.ReadByte()
		if err != nil {
			return Result{}, err
		}

		switch recordKind(kindByte) {
		case kindEnd:
			h, err := store.Finish()
			if err != nil {
				return Result{}, err
			}
			return Result{Hierarchy: h, Slots: slots.Compact()}, nil

		case kindEndOfScope:
			if err := store.PopScope(); err != nil {
				return Result{}, err
			}

		case kindDesign:
			return Result{}, fmt.Errorf("%w: Design record unreachable mid-stream", errs.ErrFailedToParseSection)

		case kindProcess:
			if _, err := r.ReadUvarint(); err != nil { // process name, intentionally discarded
				return Result{}, err
			}

		case kindBlock, kindGenerateIf, kindInstance, kindGeneric, kindPackage:
			nameID, err := r.ReadUvarint()
			if err != nil {
				return Result{}, err
			}
			store.AddScope(int(nameID), scopeKindFor(recordKind(kindByte))) //nolint:gosec

		case kindGenerateFor:
			nameID, err := r.ReadUvarint()
			if err != nil {
				return Result{}, err
			}
			store.AddScope(int(nameID), hier.ScopeGenerateFor) //nolint:gosec
			if _, err := r.ReadUvarint(); err != nil { // loop-index type id
				return Result{}, err
			}
			return Result{}, fmt.Errorf("%w: GenerateFor loop-value payload", errs.ErrUnimplementedType)

		case kindSignal, kindPortIn, kindPortOut, kindPortInOut, kindBuffer, kindLinkage:
			nameID, err := r.ReadUvarint()
			if err != nil {
				return Result{}, err
			}
			typeID, err := r.ReadUvarint()
			if err != nil {
				return Result{}, err
			}
			ty, ok := types.Get(int(typeID)) //nolint:gosec
			if !ok {
				return Result{}, fmt.Errorf("%w: %d", errs.ErrTypeIDOutOfRange, typeID)
			}
			varKind, dir := varKindFor(recordKind(kindByte))
			typeIDCopy := int(typeID) //nolint:gosec
			if err := expandVariable(r, store, slots, int(nameID), varKind, dir, ty.ResolveAlias(), &typeIDCopy); err != nil { //nolint:gosec
				return Result{}, err
			}

			declaredVars++
			if declaredVars > maxDeclaredVars {
				return Result{}, errs.ErrDeclaredVarOverrun
			}

		default:
			return Result{}, fmt.Errorf("%w: record kind %#x", errs.ErrFailedToParseKindTag, kindByte)
		}
	}
}

func scopeKindFor(k recordKind) hier.ScopeKind {
	switch k {
	case kindBlock:
		return hier.ScopeBlock
	case kindGenerateIf:
		return hier.ScopeGenerateIf
	case kindInstance:
		return hier.ScopeInstance
	case kindGeneric:
		return hier.ScopeGeneric
	case kindPackage:
		return hier.ScopePackage
	default:
		return hier.ScopeBlock
	}
}

func varKindFor(k recordKind) (hier.VarKind, hier.Direction) {
	switch k {
	case kindPortIn:
		return hier.VarPort, hier.DirectionInput
	case kindPortOut:
		return hier.VarPort, hier.DirectionOutput
	case kindPortInOut:
		return hier.VarPort, hier.DirectionInOut
	case kindBuffer:
		return hier.VarPort, hier.DirectionBuffer
	case kindLinkage:
		return hier.VarPort, hier.DirectionLinkage
	default:
		return hier.VarWire, hier.DirectionImplicit
	}
}

// expandVariable implements spec.md §4.6.1's variable-expansion table. It
// is called once per declared variable record and, for Record types,
// recurses once per field — typeID is only attached at the outermost call,
// since a field's type is implied by the record type's own field list
// rather than re-declared on the wire.
func expandVariable(r *binstream.Reader, store *hier.Store, slots *signal.Table, nameID int, kind hier.VarKind, dir hier.Direction, ty *vhdltype.Type, typeID *int) error {
	switch ty.Kind {
	case vhdltype.KindEnum:
		handle, err := readHandle(r)
		if err != nil {
			return err
		}
		if _, err := slots.Observe(handle); err != nil {
			return err
		}
		enumID := store.AddEnumType(ty)
		store.AddVar(nameID, kind, dir, 1, nil, handle, &enumID, typeID)
		return nil

	case vhdltype.KindNineValueBit:
		handle, err := readHandle(r)
		if err != nil {
			return err
		}
		if _, err := slots.Observe(handle); err != nil {
			return err
		}
		slots.SetLUT(handle, ty.LUT)
		store.AddVar(nameID, kind, dir, 1, nil, handle, nil, typeID)
		return nil

	case vhdltype.KindNineValueVec:
		n := ty.VecRange.Len()
		var canonical signal.Handle
		for i := int64(0); i < n; i++ {
			handle, err := readHandle(r)
			if err != nil {
				return err
			}
			if _, err := slots.Observe(handle); err != nil {
				return err
			}
			slots.SetLUT(handle, ty.LUT)
			if i == 0 {
				canonical = handle
			}
		}
		idx := asVarIndex(ty.VecRange)
		store.AddVar(nameID, kind, dir, int(n), &idx, canonical, nil, typeID)
		return nil

	case vhdltype.KindRecord:
		store.AddScope(nameID, hier.ScopeModule)
		for _, field := range ty.Fields {
			fieldNameID := store.AddString(field.Name)
			if err := expandVariable(r, store, slots, fieldNameID, kind, dir, field.Type.ResolveAlias(), nil); err != nil {
				return err
			}
		}
		return store.PopScope()

	default:
		return fmt.Errorf("%w: variable of kind %s", errs.ErrUnimplementedType, ty.Kind)
	}
}

// readHandle reads one signal handle: a varint in [1, max_signal_id],
// validated by signal.Table.Observe (spec.md §4.6.1).
func readHandle(r *binstream.Reader) (signal.Handle, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	return signal.Handle(v), nil
}

// asVarIndex maps a NineValueVec's declared range to an MSB/LSB pair: a
// "to" range counts up from Lo to Hi (msb = Lo), a "downto" range counts
// down from Hi to Lo (msb = Hi). This mirrors the VHDL index-range
// direction keyword the range was declared with.
func asVarIndex(rng vhdltype.Range) hier.IndexPair {
	if rng.Dir == vhdltype.Downto {
		return hier.IndexPair{MSB: int(rng.Hi), LSB: int(rng.Lo)}
	}
	return hier.IndexPair{MSB: int(rng.Lo), LSB: int(rng.Hi)}
}
