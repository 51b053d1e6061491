// Package section implements the G-format's outer framing: the 9-byte
// magic/signature, the 7-byte version/endianness header block, the 4-byte
// section tags that introduce each section, and the end-tags that close the
// sections which carry one (SNP/CYC/DIR, closed by ESN/ECY/EOD).
package section

// Tag is a 4-byte ASCII section identifier, always ending in a NUL byte.
type Tag string

// Section-opening tags. STR/TYP/WKT/HIE/EOH form the header phase (each at
// most once, in any order, EOH last); SNP/CYC/DIR/TAI form the signal pass
// (spec.md §4.2, §5).
const (
	TagSTR Tag = "STR\x00" // string table
	TagTYP Tag = "TYP\x00" // type table
	TagWKT Tag = "WKT\x00" // well-known-type annotations (optional)
	TagHIE Tag = "HIE\x00" // hierarchy
	TagEOH Tag = "EOH\x00" // end of header

	TagSNP Tag = "SNP\x00" // snapshot
	TagCYC Tag = "CYC\x00" // cycle (delta-encoded)
	TagDIR Tag = "DIR\x00" // directory (opportunistic, discarded inline)
	TagTAI Tag = "TAI\x00" // tailer, terminates the signal pass
)

// End tags close a section that was opened with a matching start tag.
const (
	EndSNP Tag = "ESN\x00"
	EndCYC Tag = "ECY\x00"
	EndDIR Tag = "EOD\x00"
)

// onceOnlySections lists the header-phase sections that may appear at most
// once, before the signal pass begins (spec.md §5). A repeat is rejected; an
// absent section is not checked here.
var onceOnlySections = map[Tag]bool{
	TagSTR: true,
	TagTYP: true,
	TagWKT: true,
	TagHIE: true,
	TagEOH: true,
}

// IsOnceOnly reports whether tag is one of the header-phase sections that
// must not repeat.
func IsOnceOnly(tag Tag) bool { return onceOnlySections[tag] }

// String returns the tag's 3 printable characters (dropping the NUL).
func (t Tag) String() string {
	if len(t) > 0 && t[len(t)-1] == 0 {
		return string(t[:len(t)-1])
	}
	return string(t)
}
