// Package hieread walks the G-format's HIE section: a declarative stream of
// scope/variable records that drives a hier.Store and allocates physical
// signal slots (spec.md §4.6). The concrete byte values for each record
// kind below are this decoder's own wire convention; the spec only names
// the record kinds, not their encoding.
package hieread

// recordKind is the 1-byte tag opening every HIE record.
type recordKind uint8

const (
	kindEnd         recordKind = 0
	kindEndOfScope  recordKind = 1
	kindDesign      recordKind = 2
	kindProcess     recordKind = 3
	kindBlock       recordKind = 4
	kindGenerateIf  recordKind = 5
	kindGenerateFor recordKind = 6
	kindInstance    recordKind = 7
	kindGeneric     recordKind = 8
	kindPackage     recordKind = 9

	kindSignal    recordKind = 10
	kindPortIn    recordKind = 11
	kindPortOut   recordKind = 12
	kindPortInOut recordKind = 13
	kindBuffer    recordKind = 14
	kindLinkage   recordKind = 15
)
