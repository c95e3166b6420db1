package spec

// Body is a HTTP request body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] allowing a nicer format for serialisation.
type Body []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Body].
func (b Body) MarshalText() ([]byte, error) {
	if b == nil {
		return []byte{}, nil
	}

	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Body].
func (b *Body) UnmarshalText(text []byte) error {
	*b = append((*b)[:0], text...)
	return nil
}

// String implements [fmt.Stringer] for [Body].
func (b Body) String() string {
	return string(b)
}

// IsEmpty reports whether the body has no content at all.
func (b Body) IsEmpty() bool {
	return len(b) == 0
}
