// Package xstrings provides string helpers missing from the standard library.
package xstrings

import (
	"iter"
	"strings"
)

// SplitSeqBackward returns an iterator over substrings of s split around sep,
// yielded in reverse textual order. It is the backward counterpart of
// strings.SplitSeq, except that the returned sequence is reusable: every
// range restarts from the end of s. The separator must be non-empty.
func SplitSeqBackward(s, sep string) iter.Seq[string] {
	if sep == "" {
		panic("xstrings: empty separator")
	}
	return func(yield func(string) bool) {
		rest := s
		for {
			i := strings.LastIndex(rest, sep)
			if i < 0 {
				break
			}
			if !yield(rest[i+len(sep):]) {
				return
			}
			rest = rest[:i]
		}
		yield(rest)
	}
}
