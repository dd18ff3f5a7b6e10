package nsid

import (
	"fmt"
	"strings"
)

// Reference is either a FullReference or a relative (bare) Fragment. The
// shape is decided once at parse time by the leading character of the input
// and never changes afterwards. The two implementations are the only ones
// possible; callers dispatch with a type switch or the IsFull and IsRelative
// helpers.
type Reference interface {
	fmt.Stringer

	// isReference seals the interface to the two reference shapes.
	isReference()
}

func (FullReference) isReference() {}
func (Fragment) isReference()      {}

// IsFull reports whether ref is a fully-qualified reference.
func IsFull(ref Reference) bool {
	_, ok := ref.(FullReference)
	return ok
}

// IsRelative reports whether ref is a bare fragment.
func IsRelative(ref Reference) bool {
	_, ok := ref.(Fragment)
	return ok
}

// ParseReference parses s as a reference. Input starting with "#" is parsed
// as a relative Fragment, anything else as a FullReference.
func ParseReference(s string) (Reference, error) {
	if strings.HasPrefix(s, "#") {
		frag, err := ParseFragment(s)
		if err != nil {
			return nil, err
		}
		return frag, nil
	}
	ref, err := ParseFullReference(s)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// FullReference is a fully-qualified reference: an NSID optionally followed
// by a fragment. It stores the whole original text plus the offset where the
// fragment starts; no substring is copied at parse time. An offset equal to
// the text length means no fragment is present.
type FullReference struct {
	text      string
	fragStart int
}

// ParseFullReference parses s as an NSID with an optional trailing fragment.
// The text is split at the first "#": the part before must validate as an
// NSID, the part at and after it, when non-empty, as a fragment.
func ParseFullReference(s string) (FullReference, error) {
	var zero FullReference
	fragStart := strings.IndexByte(s, '#')
	if fragStart < 0 {
		fragStart = len(s)
	}
	if err := validateNSID(s[:fragStart]); err != nil {
		return zero, err
	}
	if fragStart < len(s) {
		if err := validateFragment(s[fragStart:]); err != nil {
			return zero, err
		}
	}
	return FullReference{text: s, fragStart: fragStart}, nil
}

// String returns the reference text, byte-identical to the parsed input.
func (r FullReference) String() string {
	return r.text
}

// IsZero reports whether r is the zero value.
func (r FullReference) IsZero() bool {
	return r.text == ""
}

// NSID returns the identifier part of the reference as an independently
// owned NSID.
func (r FullReference) NSID() NSID {
	return NSID{text: r.text[:r.fragStart]}
}

// HasFragment reports whether the reference carries a fragment.
func (r FullReference) HasFragment() bool {
	return r.fragStart < len(r.text)
}

// Fragment returns the fragment part of the reference, including its
// leading "#", and whether one is present.
func (r FullReference) Fragment() (Fragment, bool) {
	if !r.HasFragment() {
		return Fragment{}, false
	}
	return Fragment{text: r.text[r.fragStart:]}, true
}

// FragmentName returns the fragment name without the leading "#", and
// whether a fragment is present.
func (r FullReference) FragmentName() (string, bool) {
	if !r.HasFragment() {
		return "", false
	}
	return r.text[r.fragStart+1:], true
}
