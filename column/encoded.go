package column

import (
	"iter"
	"unsafe"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
)

// Encoded is an immutable column of T values in one of the supported encodings.
type Encoded[T any] interface {
	// Kind returns the encoding tag without decoding any value.
	Kind() format.EncodingType

	// Len returns the number of values in the column.
	Len() int

	// Size returns the payload size in bytes, including the FOR header.
	Size() int

	// At returns the decoded value at index i.
	// The second return value is false if i is out of range.
	At(i int) (T, bool)

	// All returns an iterator over the decoded values in order.
	All() iter.Seq[T]

	// Values returns a newly allocated slice holding every decoded value.
	Values() []T

	// AppendPayload appends the binary payload of the column to buf:
	//
	//	kind (1 byte) | count (uint32) | [min T | max T] | codes or values
	//
	// It fails only if T is not a fixed-size type.
	AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error)

	sealed()
}

// Code is the set of stored code types for frame-of-reference columns.
type Code interface {
	uint8 | uint16 | uint32
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func appendHeader(buf []byte, engine endian.EndianEngine, kind format.EncodingType, count int) []byte {
	buf = append(buf, byte(kind))
	return engine.AppendUint32(buf, uint32(count)) //nolint:gosec
}
