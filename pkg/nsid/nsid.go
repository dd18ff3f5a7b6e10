package nsid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/wuxler/atref/pkg/util/xstrings"
)

// NSID is a validated namespaced identifier such as "com.example.fooBar".
// The zero value is not a valid NSID; use Parse or ParseBytes to construct
// one.
type NSID struct {
	text string
}

// Parse parses s as an NSID.
func Parse(s string) (NSID, error) {
	var zero NSID
	if err := validateNSID(s); err != nil {
		return zero, err
	}
	return NSID{text: s}, nil
}

// ParseBytes parses b as an NSID. The grammar is ASCII-only so any input
// that validates is valid text as-is.
func ParseBytes(b []byte) (NSID, error) {
	return Parse(string(b))
}

// MustParse wraps Parse with error panic.
func MustParse(s string) NSID {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("unable to parse nsid %q: %v", s, err))
	}
	return n
}

// String returns the NSID text, byte-identical to the parsed input.
func (n NSID) String() string {
	return n.text
}

// IsZero reports whether n is the zero value.
func (n NSID) IsZero() bool {
	return n.text == ""
}

// Authority returns the authority part of the NSID, everything up to but
// excluding the final name segment.
func (n NSID) Authority() string {
	i := strings.LastIndexByte(n.text, '.')
	if i < 0 {
		return ""
	}
	return n.text[:i]
}

// Name returns the final name segment of the NSID.
func (n NSID) Name() string {
	i := strings.LastIndexByte(n.text, '.')
	return n.text[i+1:]
}

// Segments returns an iterator over the dot-separated segments of the NSID
// in textual order. The sequence is restartable and never materialized as a
// slice. strings.SplitSeq itself hands out a single-use iterator, so every
// range starts from a fresh one.
func (n NSID) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for segment := range strings.SplitSeq(n.text, ".") {
			if !yield(segment) {
				return
			}
		}
	}
}

// SegmentsBackward returns an iterator over the dot-separated segments of
// the NSID in reverse textual order.
func (n NSID) SegmentsBackward() iter.Seq[string] {
	return xstrings.SplitSeqBackward(n.text, ".")
}

// FullReference lifts the NSID into a FullReference with no fragment. The
// conversion is loss-free and does not re-validate.
func (n NSID) FullReference() FullReference {
	return FullReference{text: n.text, fragStart: len(n.text)}
}

// WithFragment returns a FullReference combining the NSID with the given
// fragment.
func (n NSID) WithFragment(f Fragment) FullReference {
	return FullReference{text: n.text + f.text, fragStart: len(n.text)}
}
