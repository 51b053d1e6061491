package gwave

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/hieread"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/section"
	"github.com/wavebench/gwave/sigread"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/strtable"
	"github.com/wavebench/gwave/vhdltype"
	"github.com/wavebench/gwave/wavestore"
)

// hierarchySeparator is the dotted separator full names are joined with
// (spec.md §4.7's default target-format separator).
const hierarchySeparator = "."

// Read opens and decodes a G-format file by path.
func Read(path string) (*Waveform, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return decode(f)
}

// ReadFromBytes decodes a G-format stream already resident in memory.
func ReadFromBytes(data []byte) (*Waveform, error) {
	return decode(bytes.NewReader(data))
}

// IsGFormat is a non-destructive format probe: it reads and validates the
// 9-byte signature and the 7-byte header block, then restores the cursor to 0
// regardless of outcome (spec.md §6, §8's probe-idempotence property).
func IsGFormat(src io.ReadSeeker) bool {
	defer func() { _, _ = src.Seek(0, io.SeekStart) }()

	r := binstream.New(src, endian.GetLittleEndianEngine())
	_, err := section.ParseHeader(r)
	return err == nil
}

func decode(rd io.Reader) (*Waveform, error) {
	r := binstream.New(rd, endian.GetLittleEndianEngine())

	header, err := section.ParseHeader(r)
	if err != nil {
		return nil, err
	}
	r.SetEngine(header.Engine())

	var (
		strs      *strtable.Table
		types     *vhdltype.Table
		wkt       *vhdltype.WellKnownAnnotations
		hierarchy *hier.Hierarchy
		slots     []signal.Slot
	)
	seen := map[section.Tag]bool{}

	for {
		tag, err := section.ReadTag(r)
		if err != nil {
			return nil, err
		}
		if section.IsOnceOnly(tag) && seen[tag] {
			return nil, fmt.Errorf("%w: %q appeared more than once", errs.ErrUnexpectedSection, tag.String())
		}
		seen[tag] = true

		switch tag {
		case section.TagSTR:
			if err := section.ExpectZeroHeader(r, "STR"); err != nil {
				return nil, err
			}
			if strs, err = strtable.Decode(r); err != nil {
				return nil, err
			}

		case section.TagTYP:
			if err := section.ExpectZeroHeader(r, "TYP"); err != nil {
				return nil, err
			}
			if types, err = vhdltype.Decode(r, strs); err != nil {
				return nil, err
			}

		case section.TagWKT:
			if err := section.ExpectZeroHeader(r, "WKT"); err != nil {
				return nil, err
			}
			if wkt, err = vhdltype.DecodeWKT(r); err != nil {
				return nil, err
			}

		case section.TagHIE:
			if err := section.ExpectZeroHeader(r, "HIE"); err != nil {
				return nil, err
			}
			store := hier.NewStore(strs, hierarchySeparator)
			result, err := hieread.ReadSection(r, store, types)
			if err != nil {
				return nil, err
			}
			hierarchy, slots = result.Hierarchy, result.Slots

		case section.TagEOH:
			if err := section.ExpectZeroHeader(r, "EOH"); err != nil {
				return nil, err
			}

			// Discrepancies between WKT annotations and the resolved type
			// table are a debug-time assertion, never a parse failure
			// (spec.md §4.5); the result is intentionally discarded here.
			if wkt != nil && types != nil {
				_ = wkt.CheckConsistency(types)
			}

			return finishSignalPass(r, hierarchy, strs, types, slots)

		default:
			return nil, fmt.Errorf("%w: %q before EOH", errs.ErrUnexpectedSection, tag.String())
		}
	}
}

func finishSignalPass(r *binstream.Reader, hierarchy *hier.Hierarchy, strs *strtable.Table, types *vhdltype.Table, slots []signal.Slot) (*Waveform, error) {
	sink := wavestore.New(hierarchy)
	if err := sigread.ReadPass(r, slots, sink); err != nil {
		return nil, err
	}
	store, err := sink.Finish()
	if err != nil {
		return nil, err
	}

	known := make(map[signal.Handle]bool, len(slots))
	for _, s := range slots {
		known[s.Handle] = true
	}

	return &Waveform{
		hierarchy: hierarchy,
		strs:      strs,
		types:     types,
		store:     store,
		known:     known,
	}, nil
}
