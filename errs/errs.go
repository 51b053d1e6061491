// Package errs centralises the sentinel errors returned by every gwave
// package. Call sites wrap these with fmt.Errorf("...: %w", ...) when extra
// context (an offset, a tag, a count) helps a caller debug a malformed dump;
// callers that only need to branch on the failure kind can keep using
// errors.Is against the sentinels declared here.
package errs

import "errors"

// Framing and header errors (spec.md §4.2).
var (
	ErrUnexpectedHeaderMagic = errors.New("gwave: unexpected header magic")
	ErrUnexpectedHeader      = errors.New("gwave: unexpected header contents")
	ErrUnsupportedGzip       = errors.New("gwave: unsupported compression: gzip")
	ErrUnsupportedBzip2      = errors.New("gwave: unsupported compression: bzip2")
	ErrUnexpectedSection     = errors.New("gwave: unexpected section tag")
	ErrFailedToParseSection  = errors.New("gwave: failed to parse section")
	ErrFailedToParseKindTag  = errors.New("gwave: failed to parse kind tag")
)

// Value and type-system errors (spec.md §3, §4.4).
var (
	ErrExpectedPositiveInteger = errors.New("gwave: expected positive integer")
	ErrUnexpectedType          = errors.New("gwave: unexpected type for context")
	ErrFloatRangeLen           = errors.New("gwave: float range length unsupported")
	ErrAliasChainTooDeep       = errors.New("gwave: alias chain deeper than one level")
	ErrRangeNotSubset          = errors.New("gwave: range is not a subset of its base range")
	ErrUnimplementedType       = errors.New("gwave: unimplemented type-table feature")
	ErrMissingTypeTerminator   = errors.New("gwave: type table missing terminating zero byte")
)

// Hierarchy and signal-slot errors (spec.md §4.6, §4.7).
var (
	ErrStringIDOutOfRange   = errors.New("gwave: string id out of range")
	ErrTypeIDOutOfRange     = errors.New("gwave: type id out of range")
	ErrSignalIDOutOfRange   = errors.New("gwave: signal id out of range")
	ErrDeclaredVarOverrun   = errors.New("gwave: declared variable count exceeded")
	ErrScopeStackEmpty      = errors.New("gwave: end-of-scope with no open scope")
	ErrHierarchyNotFrozen   = errors.New("gwave: hierarchy has not been frozen yet")
	ErrUnknownSignalSlot    = errors.New("gwave: unknown signal slot handle")
	ErrUnknownHierarchyNode = errors.New("gwave: unknown scope or variable id")
)

// Signal-pass and wave-store errors (spec.md §4.8, §4.9).
var (
	ErrNonMonotonicTime  = errors.New("gwave: sample time went backwards")
	ErrLeadingZeroDelta  = errors.New("gwave: leading zero delta in cycle time step")
	ErrCursorOutOfRange  = errors.New("gwave: cycle cursor advanced past slot table")
	ErrSinkNotAttached   = errors.New("gwave: no wave-store sink attached")
	ErrUnknownEncoding   = errors.New("gwave: unknown physical signal encoding")
	ErrUnsupportedCompr  = errors.New("gwave: unsupported compression type")
	ErrDecoderFinished   = errors.New("gwave: decoder already finished")
	ErrEncoderFinished   = errors.New("gwave: encoder already finished")
)

// Io/UTF8/int-parse pass-throughs (spec.md §6) are not declared here: callers
// wrap the underlying io, utf8, and strconv errors with %w directly so
// errors.Is against io.EOF / io.ErrUnexpectedEOF keeps working unchanged.
