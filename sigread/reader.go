// Package sigread implements the signal-section reader (spec.md §4.8): the
// pass over SNP/CYC/DIR sections, terminated by TAI, that drives a
// wavestore.Sink with (handle, time, value) emissions decoded against a
// compacted signal.Slot table.
package sigread

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/format"
	"github.com/wavebench/gwave/internal/binstream"
	"github.com/wavebench/gwave/section"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/wavestore"
)

// ReadPass drives sink with every sample decoded from the SNP/CYC/DIR/TAI
// sequence that follows EOH, until TAI is reached. slots is the compacted
// table produced by the hierarchy-section reader, addressed by declaration
// order (a slot's position in the table is its cursor position in CYC).
func ReadPass(r *binstream.Reader, slots []signal.Slot, sink wavestore.Sink) error {
	for {
		tag, err := section.ReadTag(r)
		if err != nil {
			return err
		}

		switch tag {
		case section.TagSNP:
			if err := readSnapshot(r, slots, sink); err != nil {
				return err
			}
		case section.TagCYC:
			if err := readCycle(r, slots, sink); err != nil {
				return err
			}
		case section.TagDIR:
			if err := skipDirectory(r); err != nil {
				return err
			}
		case section.TagTAI:
			return nil
		default:
			return fmt.Errorf("%w: %q", errs.ErrUnexpectedSection, tag.String())
		}
	}
}

// readSnapshot implements the SNP case: a 12-byte header (4 zero bytes + an
// 8-byte femtosecond timestamp), then one value per physical id of every
// slot, in declaration order, closed by ESN.
func readSnapshot(r *binstream.Reader, slots []signal.Slot, sink wavestore.Sink) error {
	if err := section.ExpectZeroHeader(r, "SNP"); err != nil {
		return err
	}
	timeFS, err := r.ReadU64()
	if err != nil {
		return err
	}

	for _, slot := range slots {
		n := int(slot.EndID-slot.StartID) + 1
		for i := 0; i < n; i++ {
			value, err := readValue(r, slot)
			if err != nil {
				return err
			}
			if err := sink.Emit(slot.Handle, int64(timeFS), value); err != nil { //nolint:gosec
				return err
			}
		}
	}

	return section.ExpectEndTag(r, section.EndSNP)
}

// readCycle implements the CYC case: an 8-byte raw starting timestamp (no
// leading zero header), then a sequence of time steps. Each time step reads
// cursor-advancing unsigned-varint deltas until a zero terminates it, then a
// signed varint time delta; a negative time delta ends the section.
func readCycle(r *binstream.Reader, slots []signal.Slot, sink wavestore.Sink) error {
	currentTime, err := r.ReadU64()
	if err != nil {
		return err
	}

	firstDelta := true
	for {
		cursor := 0

		for {
			delta, err := r.ReadUvarint()
			if err != nil {
				return err
			}
			if delta == 0 {
				if firstDelta {
					return errs.ErrLeadingZeroDelta
				}
				break
			}
			firstDelta = false

			cursor += int(delta) //nolint:gosec
			if cursor < 1 || cursor > len(slots) {
				return fmt.Errorf("%w: cursor %d", errs.ErrCursorOutOfRange, cursor)
			}
			slot := slots[cursor-1]

			value, err := readValue(r, slot)
			if err != nil {
				return err
			}
			if err := sink.Emit(slot.Handle, int64(currentTime), value); err != nil { //nolint:gosec
				return err
			}
		}

		timeDelta, err := r.ReadVarint()
		if err != nil {
			return err
		}
		if timeDelta < 0 {
			break
		}
		currentTime += uint64(timeDelta) //nolint:gosec
	}

	return section.ExpectEndTag(r, section.EndCYC)
}

// skipDirectory consumes and discards an opportunistic DIR section
// encountered mid-pass; its only authoritative use is the tailer-anchored
// probe in the section package (spec.md §4.2).
func skipDirectory(r *binstream.Reader) error {
	count, err := r.ReadUvarint()
	if err != nil {
		return err
	}
	for range count {
		if _, err := section.ReadTag(r); err != nil {
			return err
		}
		if _, err := r.ReadUvarint(); err != nil {
			return err
		}
	}
	return section.ExpectEndTag(r, section.EndDIR)
}

// readValue decodes one physical sample per spec.md §4.8's per-encoding
// table: U8 is one raw byte, I32/I64 are signed varints (I32 narrowed),
// F64 is 8 raw bytes read with the stream's configured endianness. When
// slot carries a nine-value lookup table (spec.md §4.4.3, §9's "small
// resolution function"), the raw U8 wire byte is translated through it
// before the sample reaches the Sink, so every downstream consumer sees
// canonical nine-value codes rather than the type's own literal indices.
func readValue(r *binstream.Reader, slot signal.Slot) (wavestore.Value, error) {
	switch slot.Encoding {
	case format.EncodingU8:
		b, err := r.ReadByte()
		if err != nil {
			return wavestore.Value{}, err
		}
		if slot.LUT != nil {
			if int(b) >= len(slot.LUT) {
				return wavestore.Value{}, fmt.Errorf("%w: nine-value index %d", errs.ErrUnknownEncoding, b)
			}
			b = slot.LUT[b]
		}
		return wavestore.U8Value(b), nil

	case format.EncodingI32:
		v, err := r.ReadVarint()
		if err != nil {
			return wavestore.Value{}, err
		}
		return wavestore.I32Value(int32(v)), nil //nolint:gosec

	case format.EncodingI64:
		v, err := r.ReadVarint()
		if err != nil {
			return wavestore.Value{}, err
		}
		return wavestore.I64Value(v), nil

	case format.EncodingF64:
		v, err := r.ReadF64()
		if err != nil {
			return wavestore.Value{}, err
		}
		return wavestore.F64Value(v), nil

	default:
		return wavestore.Value{}, fmt.Errorf("%w: %s", errs.ErrUnknownEncoding, slot.Encoding)
	}
}
