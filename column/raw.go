package column

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
)

// Raw holds the original values unchanged.
type Raw[T any] struct {
	values []T
}

var _ Encoded[uint64] = (*Raw[uint64])(nil)

// NewRaw creates a raw column owning a copy of values.
func NewRaw[T any](values []T) *Raw[T] {
	return &Raw[T]{values: slices.Clone(values)}
}

func (r *Raw[T]) sealed() {}

// Kind returns format.TypeRaw.
func (r *Raw[T]) Kind() format.EncodingType {
	return format.TypeRaw
}

// Len returns the number of values.
func (r *Raw[T]) Len() int {
	return len(r.values)
}

// Size returns len × sizeof(T).
func (r *Raw[T]) Size() int {
	return len(r.values) * sizeOf[T]()
}

// At returns the value at index i.
func (r *Raw[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(r.values) {
		var zero T
		return zero, false
	}

	return r.values[i], true
}

// All returns an iterator over the stored values.
func (r *Raw[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the stored values.
func (r *Raw[T]) Values() []T {
	return slices.Clone(r.values)
}

// AppendPayload appends kind, count and the values in engine byte order.
func (r *Raw[T]) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	buf = appendHeader(buf, engine, format.TypeRaw, len(r.values))

	out, err := binary.Append(buf, engine, r.values)
	if err != nil {
		return buf, fmt.Errorf("raw payload: %w", err)
	}

	return out, nil
}
