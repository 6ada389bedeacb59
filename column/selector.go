package column

import (
	"fmt"
	"math"

	"github.com/arloliu/paxstore/errs"
	"golang.org/x/exp/constraints"
)

// Select picks the cheapest encoding that round-trips values exactly.
//
// Unsigned builtin element types (uint, uint8, uint16, uint32, uint64, uintptr)
// go through SelectUnsigned. Every other element type, including named
// unsigned types, is stored Raw.
//
// Returns errs.ErrEmptyColumn if values is empty.
func Select[T any](values []T) (Encoded[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot select an encoding", errs.ErrEmptyColumn)
	}

	switch v := any(values).(type) {
	case []uint64:
		enc, err := SelectUnsigned(v)
		return as[T, uint64](enc, err)
	case []uint32:
		enc, err := SelectUnsigned(v)
		return as[T, uint32](enc, err)
	case []uint16:
		enc, err := SelectUnsigned(v)
		return as[T, uint16](enc, err)
	case []uint8:
		enc, err := SelectUnsigned(v)
		return as[T, uint8](enc, err)
	case []uint:
		enc, err := SelectUnsigned(v)
		return as[T, uint](enc, err)
	case []uintptr:
		enc, err := SelectUnsigned(v)
		return as[T, uintptr](enc, err)
	default:
		return NewRaw(values), nil
	}
}

// as re-types an encoded column once the type switch in Select has proven U == T.
func as[T, U any](enc Encoded[U], err error) (Encoded[T], error) {
	if err != nil {
		return nil, err
	}

	return any(enc).(Encoded[T]), nil
}

// SelectUnsigned picks the narrowest frame-of-reference code width that covers
// max(values) - min(values), falling back to Raw when the spread does not fit
// in 4 bytes.
//
// Returns errs.ErrEmptyColumn if values is empty.
func SelectUnsigned[T constraints.Unsigned](values []T) (Encoded[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot select an encoding", errs.ErrEmptyColumn)
	}

	minValue, maxValue := minMax(values)
	spread := uint64(maxValue - minValue)

	switch {
	case spread > math.MaxUint32:
		return NewRaw(values), nil
	case spread <= math.MaxUint8:
		return newFOR[T, uint8](values, minValue, maxValue), nil
	case spread <= math.MaxUint16:
		return newFOR[T, uint16](values, minValue, maxValue), nil
	default:
		return newFOR[T, uint32](values, minValue, maxValue), nil
	}
}

func minMax[T constraints.Unsigned](values []T) (T, T) {
	minValue, maxValue := values[0], values[0]
	for _, v := range values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}

	return minValue, maxValue
}
