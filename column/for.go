package column

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
	"golang.org/x/exp/constraints"
)

// FOR is a frame-of-reference column: every value is stored as its offset
// from the column minimum in a code of type C.
//
// max - min must fit in C. SelectUnsigned guarantees this; At does not re-check it.
type FOR[T constraints.Unsigned, C Code] struct {
	minValue T
	maxValue T
	codes    []C
}

var (
	_ Encoded[uint64] = (*FOR[uint64, uint8])(nil)
	_ Encoded[uint64] = (*FOR[uint64, uint16])(nil)
	_ Encoded[uint64] = (*FOR[uint64, uint32])(nil)
)

func newFOR[T constraints.Unsigned, C Code](values []T, minValue, maxValue T) *FOR[T, C] {
	codes := make([]C, len(values))
	for i, v := range values {
		codes[i] = C(v - minValue)
	}

	return &FOR[T, C]{minValue: minValue, maxValue: maxValue, codes: codes}
}

func (f *FOR[T, C]) sealed() {}

// Kind returns TypeFOR1, TypeFOR2 or TypeFOR4 according to the code width.
func (f *FOR[T, C]) Kind() format.EncodingType {
	switch sizeOf[C]() {
	case 1:
		return format.TypeFOR1
	case 2:
		return format.TypeFOR2
	default:
		return format.TypeFOR4
	}
}

// CodeWidth returns the byte width of a stored code.
func (f *FOR[T, C]) CodeWidth() int {
	return sizeOf[C]()
}

// Min returns the frame of reference.
func (f *FOR[T, C]) Min() T {
	return f.minValue
}

// Max returns the largest value in the column.
func (f *FOR[T, C]) Max() T {
	return f.maxValue
}

// Codes returns a copy of the stored offsets.
func (f *FOR[T, C]) Codes() []C {
	return slices.Clone(f.codes)
}

// Len returns the number of values.
func (f *FOR[T, C]) Len() int {
	return len(f.codes)
}

// Size returns len × code width plus the min/max header.
func (f *FOR[T, C]) Size() int {
	return len(f.codes)*sizeOf[C]() + 2*sizeOf[T]()
}

// At returns the decoded value at index i.
func (f *FOR[T, C]) At(i int) (T, bool) {
	if i < 0 || i >= len(f.codes) {
		return 0, false
	}

	return T(f.codes[i]) + f.minValue, true
}

// All returns an iterator over the decoded values.
func (f *FOR[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range f.codes {
			if !yield(T(c) + f.minValue) {
				return
			}
		}
	}
}

// Values returns a newly allocated slice of decoded values.
func (f *FOR[T, C]) Values() []T {
	out := make([]T, len(f.codes))
	for i, c := range f.codes {
		out[i] = T(c) + f.minValue
	}

	return out
}

// AppendPayload appends kind, count, min, max and the codes in engine byte order.
func (f *FOR[T, C]) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	buf = appendHeader(buf, engine, f.Kind(), len(f.codes))

	out, err := binary.Append(buf, engine, [2]T{f.minValue, f.maxValue})
	if err != nil {
		return buf, fmt.Errorf("%s header: %w", f.Kind(), err)
	}

	out, err = binary.Append(out, engine, f.codes)
	if err != nil {
		return buf, fmt.Errorf("%s codes: %w", f.Kind(), err)
	}

	return out, nil
}
