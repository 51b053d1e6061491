package section

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/internal/binstream"
)

// ReadTag reads the next 4-byte section tag.
func ReadTag(r *binstream.Reader) (Tag, error) {
	buf, err := r.ReadN(4)
	if err != nil {
		return "", err
	}
	return Tag(buf), nil
}

// ExpectZeroHeader reads the 4-byte all-zero header that precedes every
// section except CYC and the directory/tailer framing (spec.md §4.2). A
// non-zero header is a hard FailedToParseSection.
func ExpectZeroHeader(r *binstream.Reader, section string) error {
	buf, err := r.ReadN(4)
	if err != nil {
		return err
	}
	for _, b := range buf {
		if b != 0 {
			return fmt.Errorf("%w: %s: non-zero section header", errs.ErrFailedToParseSection, section)
		}
	}
	return nil
}

// ExpectEndTag reads the next tag and confirms it matches want, failing hard
// otherwise. Used to close SNP/CYC/DIR sections with ESN/ECY/EOD.
func ExpectEndTag(r *binstream.Reader, want Tag) error {
	got, err := ReadTag(r)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected end tag %q, got %q", errs.ErrFailedToParseSection, want.String(), got.String())
	}
	return nil
}
