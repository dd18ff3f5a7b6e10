// Package nsid implements parsing and validation of AT Protocol Namespaced
// Identifiers (NSIDs), the reverse-domain dotted strings used to name lexicon
// schemas and methods, together with the fragment and reference forms that
// address a single definition inside a schema document.
//
// All types are immutable once constructed: parsing is the single validation
// point and the textual form of a parsed value is always byte-identical to
// its input. No normalization or case-folding is performed.
//
// # Grammar
//
//	nsid            := authority "." name-segment
//	authority       := tld-segment *( "." domain-segment )
//	tld-segment     := ALPHA [ *61( ALPHA / DIGIT / "-" ) ( ALPHA / DIGIT ) ]
//	domain-segment  := ( ALPHA / DIGIT ) [ *61( ALPHA / DIGIT / "-" ) ( ALPHA / DIGIT ) ]
//	name-segment    := ALPHA *( ALPHA / DIGIT )
//
//	reference       := full-reference | fragment
//	full-reference  := nsid [ fragment ]
//	fragment        := "#" 1*63( ALPHA / DIGIT )
//
// An NSID must have at least 3 segments, at most 317 characters overall, and
// an authority of at most 252 characters. The name segment is bounded only
// by the overall limit.
//
// # NOTE
//
// This package is draw inspiration deeply from the follow repositories:
//   - github.com/bluesky-social/atproto
//   - github.com/bluesky-social/indigo/atproto/syntax
package nsid
