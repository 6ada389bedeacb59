package store

import "bytes"

// NameSize is the byte width of the Firstname field.
const NameSize = 16

// Name is a fixed-size, zero-padded name buffer with value semantics.
type Name [NameSize]byte

// NewName copies s into a Name, truncating it to NameSize bytes.
func NewName(s string) Name {
	var n Name
	copy(n[:], s)

	return n
}

// String returns the name without trailing zero padding.
func (n Name) String() string {
	return string(bytes.TrimRight(n[:], "\x00"))
}

// Row is one employee record. The schema is fixed for every layout.
type Row struct {
	ID        uint64
	Salary    uint64
	Firstname Name
}
