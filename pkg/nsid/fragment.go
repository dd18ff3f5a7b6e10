package nsid

import "fmt"

// Fragment is a validated "#"-prefixed name addressing a single definition
// inside the schema document an NSID refers to, such as "#main". The zero
// value is not a valid Fragment; use ParseFragment to construct one.
type Fragment struct {
	text string
}

// ParseFragment parses s as a fragment. The input must include the leading
// "#".
func ParseFragment(s string) (Fragment, error) {
	var zero Fragment
	if err := validateFragment(s); err != nil {
		return zero, err
	}
	return Fragment{text: s}, nil
}

// MustParseFragment wraps ParseFragment with error panic.
func MustParseFragment(s string) Fragment {
	f, err := ParseFragment(s)
	if err != nil {
		panic(fmt.Sprintf("unable to parse fragment %q: %v", s, err))
	}
	return f
}

// String returns the fragment text including the leading "#", byte-identical
// to the parsed input.
func (f Fragment) String() string {
	return f.text
}

// Name returns the fragment name without the leading "#".
func (f Fragment) Name() string {
	if f.text == "" {
		return ""
	}
	return f.text[1:]
}

// IsZero reports whether f is the zero value.
func (f Fragment) IsZero() bool {
	return f.text == ""
}
