// Package internal defines the segment-level grammar of namespaced
// identifiers as composed regular expressions.
package internal

import (
	"regexp"

	"github.com/wuxler/atref/pkg/util/xregexp"
)

var (
	// re compiles the string to a regular expression.
	re         = regexp.MustCompile
	expression = xregexp.Expression
	optional   = xregexp.Optional
	repeated   = xregexp.Repeated
	anchored   = xregexp.Anchored
)

const (
	// alpha defines the ASCII letter atom. Both cases are allowed, NSIDs
	// are not case-folded.
	alpha = `[a-zA-Z]`

	// alphaNumeric defines the ASCII letter or digit atom.
	alphaNumeric = `[a-zA-Z0-9]`

	// domainChar defines the characters allowed inside a domain segment,
	// including the hyphen. A hyphen may not start or end a segment.
	domainChar = `[a-zA-Z0-9-]`
)

var (
	// tldSegment matches the first (leftmost) segment of an NSID. It must
	// start with a letter, may contain hyphens, and may not end with a
	// hyphen. At most 63 characters.
	tldSegment = expression(alpha, optional(domainChar+`{0,61}`, alphaNumeric))

	// domainSegment matches any interior segment of an NSID authority. Same
	// shape as tldSegment except a leading digit is allowed.
	domainSegment = expression(alphaNumeric, optional(domainChar+`{0,61}`, alphaNumeric))

	// nameSegment matches the final segment of an NSID. Letters and digits
	// only, starting with a letter. Its length is bounded only by the
	// overall NSID length limit.
	nameSegment = expression(alpha, alphaNumeric+`*`)

	// fragmentName matches the name part of a fragment after the leading
	// "#". Letters and digits only; length is checked separately against
	// the shared segment length range.
	fragmentName = repeated(alphaNumeric)
)

var (
	// AnchoredTLDSegmentRegexp matches valid first segments, anchored at the
	// start and end of the matched string.
	AnchoredTLDSegmentRegexp = re(anchored(tldSegment))

	// AnchoredDomainSegmentRegexp matches valid interior segments, anchored
	// at the start and end of the matched string.
	AnchoredDomainSegmentRegexp = re(anchored(domainSegment))

	// AnchoredNameSegmentRegexp matches valid final segments, anchored at
	// the start and end of the matched string.
	AnchoredNameSegmentRegexp = re(anchored(nameSegment))

	// AnchoredFragmentNameRegexp matches valid fragment names without the
	// leading "#", anchored at the start and end of the matched string.
	AnchoredFragmentNameRegexp = re(anchored(fragmentName))
)
