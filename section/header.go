package section

import (
	"github.com/wavebench/gwave/endian"
	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/binstream"
)

// Signature is the 9-byte magic/identifier every G-format file begins with:
// a 2-byte magic, followed by a 7-byte signature, spelling a literal
// identifier that ends in a newline.
const Signature = "GWAVE1.0\n"

// HeaderBlockSize is the size in bytes of the version/endianness block that
// immediately follows the 9-byte Signature.
const HeaderBlockSize = 7

// wordLengthReservedMask isolates the high nibble of the word-length byte,
// which spec.md §4.2 requires to be zero.
const wordLengthReservedMask = 0xF0

// Header is the fixed framing block at the start of a G-format stream:
// Signature, then version/endianness/word-length/word-offset.
type Header struct {
	Version    uint8
	Endianness uint8 // 1 = little, 2 = big
	WordLength uint8 // low nibble of the on-disk byte; high nibble is reserved
	WordOffset uint32
}

// Engine returns the EndianEngine selected by the header's Endianness flag.
// Callers should only reach this after ParseHeader has validated Endianness.
func (h Header) Engine() endian.EndianEngine {
	engine, _ := endian.FromHeaderFlag(h.Endianness)
	return engine
}

// ParseHeader reads and validates the 9-byte signature and the 7-byte
// header block from r. A leading gzip or bzip2 magic is reported as a
// dedicated unsupported-compression error rather than a generic mismatch.
func ParseHeader(r *binstream.Reader) (Header, error) {
	sig, err := r.ReadN(len(Signature))
	if err != nil {
		return Header{}, err
	}

	if sig[0] == 0x1F && sig[1] == 0x8B {
		return Header{}, errs.ErrUnsupportedGzip
	}
	if sig[0] == 'B' && sig[1] == 'Z' {
		return Header{}, errs.ErrUnsupportedBzip2
	}
	if string(sig) != Signature {
		return Header{}, errs.ErrUnexpectedHeaderMagic
	}

	block, err := r.ReadN(HeaderBlockSize)
	if err != nil {
		return Header{}, err
	}

	h := Header{
		Version:    block[0],
		Endianness: block[1],
		WordLength: block[2] & 0x0F,
	}

	if h.Version > 1 {
		return Header{}, errs.ErrUnexpectedHeader
	}
	if h.Endianness != 1 && h.Endianness != 2 {
		return Header{}, errs.ErrUnexpectedHeader
	}
	if block[2]&wordLengthReservedMask != 0 {
		return Header{}, errs.ErrUnexpectedHeader
	}

	engine := h.Engine()
	h.WordOffset = engine.Uint32(block[3:7])

	return h, nil
}
