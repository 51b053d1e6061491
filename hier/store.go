// Package hier implements the hierarchy store: dense, append-only arrays of
// scopes and variables addressed by small integer handles, with parent
// back-pointers and lazy full-name reconstruction (spec.md §3, §4.7).
package hier

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/hash"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/strtable"
	"github.com/wavebench/gwave/vhdltype"
)

// ScopeID addresses a scope node. The synthetic top scope is ScopeID(-1).
type ScopeID int

// VarID addresses a variable (leaf) node.
type VarID int

const rootScope ScopeID = -1

// EnumType is a lazily-materialised, per-VHDL-type literal lookup attached
// to Enum-typed variables (spec.md §4.6.1: "allocate a mapping i -> literal_i
// on first use").
type EnumType struct {
	Literals []string
}

// scopeNode is the store's internal scope record.
type scopeNode struct {
	NameID int
	Parent ScopeID
	Kind   ScopeKind
}

// varNode is the store's internal variable record.
type varNode struct {
	NameID       int
	Parent       ScopeID
	Kind         VarKind
	Direction    Direction
	BitWidth     int
	Index        *IndexPair
	SignalHandle signal.Handle
	EnumType     *int // index into Store.enumTypes, if this var is Enum-typed
	TypeID       *int // vhdltype.Table id of the variable's declared type, if carried
}

// Store is the mutable builder for a hierarchy tree. It is not safe for
// concurrent use; construction happens single-threaded during the
// hierarchy-section walk, then Finish freezes it.
type Store struct {
	strs *strtable.Table
	sep  string

	scopes []scopeNode
	vars   []varNode

	enumTypes []EnumType
	enumIndex map[*vhdltype.Type]int

	scopeStack []ScopeID // currently open scopes, root-most first

	fullNameHashes map[uint64][]VarID // xxhash(full name) -> variables sharing it
}

// NewStore creates a builder over strs, using sep (typically ".") to join
// full names.
func NewStore(strs *strtable.Table, sep string) *Store {
	return &Store{
		strs:           strs,
		sep:            sep,
		scopeStack:     []ScopeID{rootScope},
		enumIndex:      make(map[*vhdltype.Type]int),
		fullNameHashes: make(map[uint64][]VarID),
	}
}

// AddString interns str, returning its id. Exposed for parity with the
// generic hierarchy-store API (spec.md §4.7); the G-format front end
// populates the backing table up front from the STR section and rarely
// needs this beyond synthetic names.
func (s *Store) AddString(str string) int { return s.strs.Append(str) }

// AddEnumType returns the EnumType id for ty, building it on first use from
// ty.Literals and returning the cached id on every subsequent call with the
// same type (spec.md §4.6.1).
func (s *Store) AddEnumType(ty *vhdltype.Type) int {
	if id, ok := s.enumIndex[ty]; ok {
		return id
	}
	id := len(s.enumTypes)
	s.enumTypes = append(s.enumTypes, EnumType{Literals: ty.Literals})
	s.enumIndex[ty] = id
	return id
}

// CurrentScope returns the scope new nodes are being added under.
func (s *Store) CurrentScope() ScopeID { return s.scopeStack[len(s.scopeStack)-1] }

// AddScope opens a new scope under the current scope and pushes it.
func (s *Store) AddScope(nameID int, kind ScopeKind) ScopeID {
	id := ScopeID(len(s.scopes))
	s.scopes = append(s.scopes, scopeNode{NameID: nameID, Parent: s.CurrentScope(), Kind: kind})
	s.scopeStack = append(s.scopeStack, id)
	return id
}

// PopScope closes the current scope, returning to its parent.
func (s *Store) PopScope() error {
	if len(s.scopeStack) <= 1 {
		return errs.ErrScopeStackEmpty
	}
	s.scopeStack = s.scopeStack[:len(s.scopeStack)-1]
	return nil
}

// AddVar instantiates one leaf variable under the current scope.
func (s *Store) AddVar(nameID int, kind VarKind, direction Direction, bitWidth int, index *IndexPair, handle signal.Handle, enumType, typeID *int) VarID {
	id := VarID(len(s.vars))
	s.vars = append(s.vars, varNode{
		NameID:       nameID,
		Parent:       s.CurrentScope(),
		Kind:         kind,
		Direction:    direction,
		BitWidth:     bitWidth,
		Index:        index,
		SignalHandle: handle,
		EnumType:     enumType,
		TypeID:       typeID,
	})

	full := s.fullName(nameID, s.CurrentScope())
	h := hash.ID(full)
	s.fullNameHashes[h] = append(s.fullNameHashes[h], id)

	return id
}

// Finish freezes the store into a queryable Hierarchy. The scope stack
// must be back down to just the synthetic root (every opened scope popped).
func (s *Store) Finish() (*Hierarchy, error) {
	if len(s.scopeStack) != 1 {
		return nil, fmt.Errorf("%w: %d scope(s) still open at end of hierarchy section", errs.ErrFailedToParseSection, len(s.scopeStack)-1)
	}
	return &Hierarchy{
		strs:           s.strs,
		sep:            s.sep,
		scopes:         s.scopes,
		vars:           s.vars,
		enumTypes:      s.enumTypes,
		fullNameHashes: s.fullNameHashes,
	}, nil
}

// fullName reconstructs a dotted name for nameID under parent, without
// requiring the node to exist in s.vars/s.scopes yet — used while a
// variable is being added, before it has a VarID of its own.
func (s *Store) fullName(nameID int, parent ScopeID) string {
	segments := []string{s.nameOf(nameID)}
	for p := parent; p != rootScope; p = s.scopes[p].Parent {
		segments = append([]string{s.nameOf(s.scopes[p].NameID)}, segments...)
	}
	return joinSegments(segments, s.sep)
}

func (s *Store) nameOf(id int) string {
	if n, ok := s.strs.Get(id); ok {
		return n
	}
	return strtable.AnonString
}

func joinSegments(segments []string, sep string) string {
	out := segments[0]
	for _, seg := range segments[1:] {
		out += sep + seg
	}
	return out
}
