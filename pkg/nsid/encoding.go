package nsid

import "github.com/fxamacker/cbor/v2"

// The concrete types marshal as their plain textual form in both text-based
// encodings (JSON, YAML, anything driven by encoding.TextMarshaler) and in
// CBOR, where AT Protocol records live. Unmarshaling re-validates, so a
// decoded value upholds the same invariants as a parsed one.

// MarshalText implements encoding.TextMarshaler.
func (n NSID) MarshalText() ([]byte, error) {
	return []byte(n.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NSID) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding the NSID as a CBOR text
// string.
func (n NSID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(n.text)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (n *NSID) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fragment) MarshalText() ([]byte, error) {
	return []byte(f.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fragment) UnmarshalText(text []byte) error {
	parsed, err := ParseFragment(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding the fragment as a CBOR
// text string.
func (f Fragment) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(f.text)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (f *Fragment) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFragment(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r FullReference) MarshalText() ([]byte, error) {
	return []byte(r.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *FullReference) UnmarshalText(text []byte) error {
	parsed, err := ParseFullReference(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding the reference as a CBOR
// text string.
func (r FullReference) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.text)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *FullReference) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFullReference(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
