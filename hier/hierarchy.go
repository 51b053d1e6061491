package hier

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/strtable"
)

// Hierarchy is the frozen, queryable product of a Store (spec.md §4.7).
type Hierarchy struct {
	strs *strtable.Table
	sep  string

	scopes []scopeNode
	vars   []varNode

	enumTypes []EnumType

	fullNameHashes map[uint64][]VarID
}

func (h *Hierarchy) nameOf(id int) string {
	if n, ok := h.strs.Get(id); ok {
		return n
	}
	return strtable.AnonString
}

// ScopeName returns a scope's local (unqualified) name.
func (h *Hierarchy) ScopeName(id ScopeID) (string, error) {
	if id < 0 || int(id) >= len(h.scopes) {
		return "", fmt.Errorf("%w: scope %d", errs.ErrUnknownHierarchyNode, id)
	}
	return h.nameOf(h.scopes[id].NameID), nil
}

// ScopeFullName reconstructs a scope's dotted full name by walking parent
// links; nothing is cached across calls, per spec.md §4.7's lazy-names
// rationale.
func (h *Hierarchy) ScopeFullName(id ScopeID) (string, error) {
	if id < 0 || int(id) >= len(h.scopes) {
		return "", fmt.Errorf("%w: scope %d", errs.ErrUnknownHierarchyNode, id)
	}
	return h.fullName(h.scopes[id].NameID, h.scopes[id].Parent), nil
}

// VarName returns a variable's local (unqualified) name.
func (h *Hierarchy) VarName(id VarID) (string, error) {
	if id < 0 || int(id) >= len(h.vars) {
		return "", fmt.Errorf("%w: var %d", errs.ErrUnknownHierarchyNode, id)
	}
	return h.nameOf(h.vars[id].NameID), nil
}

// VarFullName reconstructs a variable's dotted full name.
func (h *Hierarchy) VarFullName(id VarID) (string, error) {
	if id < 0 || int(id) >= len(h.vars) {
		return "", fmt.Errorf("%w: var %d", errs.ErrUnknownHierarchyNode, id)
	}
	v := h.vars[id]
	return h.fullName(v.NameID, v.Parent), nil
}

func (h *Hierarchy) fullName(nameID int, parent ScopeID) string {
	segments := []string{h.nameOf(nameID)}
	for p := parent; p != rootScope; p = h.scopes[p].Parent {
		segments = append([]string{h.nameOf(h.scopes[p].NameID)}, segments...)
	}
	return joinSegments(segments, h.sep)
}

// VarInfo is a read-only snapshot of one variable's metadata, returned by
// the iteration helpers below so callers never see the mutable varNode.
type VarInfo struct {
	ID           VarID
	Parent       ScopeID
	Kind         VarKind
	Direction    Direction
	BitWidth     int
	Index        *IndexPair
	SignalHandle signal.Handle
	EnumType     *int
	TypeID       *int
}

func (h *Hierarchy) varInfo(id VarID) VarInfo {
	v := h.vars[id]
	return VarInfo{
		ID: id, Parent: v.Parent, Kind: v.Kind, Direction: v.Direction,
		BitWidth: v.BitWidth, Index: v.Index, SignalHandle: v.SignalHandle,
		EnumType: v.EnumType, TypeID: v.TypeID,
	}
}

// IterVars yields every variable in declaration order.
func (h *Hierarchy) IterVars() iter.Seq[VarInfo] {
	return func(yield func(VarInfo) bool) {
		for id := range h.vars {
			if !yield(h.varInfo(VarID(id))) {
				return
			}
		}
	}
}

// ScopeInfo is a read-only snapshot of one scope's metadata.
type ScopeInfo struct {
	ID     ScopeID
	Parent ScopeID
	Kind   ScopeKind
}

// IterScopes yields every scope in declaration order.
func (h *Hierarchy) IterScopes() iter.Seq[ScopeInfo] {
	return func(yield func(ScopeInfo) bool) {
		for id, sc := range h.scopes {
			if !yield(ScopeInfo{ID: ScopeID(id), Parent: sc.Parent, Kind: sc.Kind}) {
				return
			}
		}
	}
}

// GetUniqueSignalsVars returns one representative VarInfo per distinct
// signal handle, in first-declaration order — the de-duplicated view over
// signal-sharing variables (spec.md §3's "Signal-sharing").
func (h *Hierarchy) GetUniqueSignalsVars() []VarInfo {
	seen := make(map[signal.Handle]bool, len(h.vars))
	out := make([]VarInfo, 0, len(h.vars))
	for id := range h.vars {
		v := h.varInfo(VarID(id))
		if seen[v.SignalHandle] {
			continue
		}
		seen[v.SignalHandle] = true
		out = append(out, v)
	}
	return out
}

// DuplicateFullNames reports groups of two or more variables whose full
// names hash to the same xxhash bucket — candidates for a genuine
// duplicate-name collision in the source design. Diagnostic only; the
// store never rejects a collision.
func (h *Hierarchy) DuplicateFullNames() [][]VarID {
	var groups [][]VarID
	for _, ids := range h.fullNameHashes {
		if len(ids) > 1 {
			groups = append(groups, ids)
		}
	}
	return groups
}

// EnumLiterals returns the literal list for an enum-type id allocated via
// Store.AddEnumType.
func (h *Hierarchy) EnumLiterals(enumID int) ([]string, bool) {
	if enumID < 0 || enumID >= len(h.enumTypes) {
		return nil, false
	}
	return h.enumTypes[enumID].Literals, true
}

// SizeInMemory estimates the heap footprint of the frozen arrays and the
// interned string table, in bytes (spec.md §4.7).
func (h *Hierarchy) SizeInMemory() uintptr {
	var size uintptr
	size += uintptr(len(h.scopes)) * unsafe.Sizeof(scopeNode{})
	size += uintptr(len(h.vars)) * unsafe.Sizeof(varNode{})
	for i := 0; i < h.strs.Len(); i++ {
		s, _ := h.strs.Get(i)
		size += uintptr(len(s))
	}
	return size
}
