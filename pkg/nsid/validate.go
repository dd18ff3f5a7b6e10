package nsid

import (
	"strings"

	"github.com/wuxler/atref/pkg/errdefs"
	"github.com/wuxler/atref/pkg/nsid/internal"
)

const (
	// MaxLength is the maximum total length of an NSID in bytes.
	MaxLength = 317

	// MaxAuthorityLength bounds the authority part of an NSID, everything
	// up to but excluding the final name segment. The bound is exclusive:
	// an authority of 252 bytes is the longest accepted.
	MaxAuthorityLength = 253

	// MinSegments is the minimum number of dot-separated segments in an NSID.
	MinSegments = 3

	// MinSegmentLength and MaxSegmentLength bound the length of a single
	// domain segment and of a fragment name.
	MinSegmentLength = 1
	MaxSegmentLength = 63
)

// IsValidTLD reports whether the segment is valid as the first (leftmost)
// segment of an NSID. Empty input is rejected.
func IsValidTLD(segment []byte) bool {
	return internal.AnchoredTLDSegmentRegexp.Match(segment)
}

// IsValidDomainSegment reports whether the segment is valid as an interior
// segment of an NSID authority. Empty input is rejected.
func IsValidDomainSegment(segment []byte) bool {
	return internal.AnchoredDomainSegmentRegexp.Match(segment)
}

// IsValidName reports whether the segment is valid as the final name segment
// of an NSID. Empty input is rejected.
func IsValidName(segment []byte) bool {
	return internal.AnchoredNameSegmentRegexp.Match(segment)
}

// validateNSID checks s against the NSID grammar in a single left-to-right
// pass. The segment following the current one decides which predicate
// applies: interior segments use the domain-segment rule, the last segment
// uses the name rule and additionally bounds the accumulated authority
// length. All failures collapse to ErrBadNSID.
func validateNSID(s string) error {
	if len(s) > MaxLength {
		return errdefs.Newf(ErrBadNSID, "length %d exceeds %d characters", len(s), MaxLength)
	}

	tld, rest, more := strings.Cut(s, ".")
	if !internal.AnchoredTLDSegmentRegexp.MatchString(tld) {
		return errdefs.Newf(ErrBadNSID, "invalid tld segment %q", tld)
	}

	// authorityLen tracks the authority text length seen so far, including
	// one separator per segment already consumed.
	authorityLen := len(tld)
	numSegments := 1
	for more {
		var segment string
		segment, rest, more = strings.Cut(rest, ".")
		numSegments++
		if more {
			if !internal.AnchoredDomainSegmentRegexp.MatchString(segment) {
				return errdefs.Newf(ErrBadNSID, "invalid domain segment %q", segment)
			}
			authorityLen += 1 + len(segment)
			continue
		}
		if authorityLen >= MaxAuthorityLength {
			return errdefs.Newf(ErrBadNSID, "authority length %d exceeds %d characters",
				authorityLen, MaxAuthorityLength-1)
		}
		if !internal.AnchoredNameSegmentRegexp.MatchString(segment) {
			return errdefs.Newf(ErrBadNSID, "invalid name segment %q", segment)
		}
	}

	if numSegments < MinSegments {
		return errdefs.Newf(ErrBadNSID, "at least %d segments are required, got %d",
			MinSegments, numSegments)
	}
	return nil
}

// validateFragment checks s against the fragment grammar: a leading "#"
// followed by an ASCII alphanumeric name within the shared segment length
// range. All failures collapse to ErrBadFragment.
func validateFragment(s string) error {
	name, found := strings.CutPrefix(s, "#")
	if !found {
		return errdefs.Newf(ErrBadFragment, "fragment must start with '#'")
	}
	if len(name) < MinSegmentLength || len(name) > MaxSegmentLength {
		return errdefs.Newf(ErrBadFragment, "fragment name length must be within [%d, %d], got %d",
			MinSegmentLength, MaxSegmentLength, len(name))
	}
	if !internal.AnchoredFragmentNameRegexp.MatchString(name) {
		return errdefs.Newf(ErrBadFragment, "fragment name %q must be ASCII alphanumeric", name)
	}
	return nil
}
