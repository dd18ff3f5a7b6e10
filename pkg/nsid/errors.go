package nsid

import "errors"

var (
	// ErrBadNSID is returned when a string fails to validate as an NSID.
	// Every NSID parse failure matches this error with errors.Is, whatever
	// the underlying cause.
	ErrBadNSID = errors.New("bad nsid")

	// ErrBadFragment is returned when a string fails to validate as an NSID
	// fragment. Every fragment parse failure matches this error with
	// errors.Is, whatever the underlying cause.
	ErrBadFragment = errors.New("bad nsid fragment")
)
