package column

import "golang.org/x/exp/constraints"

// Sum returns the sum of every value in enc, computed in T with unsigned
// wraparound. FOR codes are decoded inside the reduction loop.
func Sum[T constraints.Unsigned](enc Encoded[T]) T {
	switch c := enc.(type) {
	case *Raw[T]:
		return sumRaw(c.values)
	case *FOR[T, uint8]:
		return sumFOR(c.codes, c.minValue)
	case *FOR[T, uint16]:
		return sumFOR(c.codes, c.minValue)
	case *FOR[T, uint32]:
		return sumFOR(c.codes, c.minValue)
	default:
		// unreachable: Encoded is sealed
		var total T
		for v := range enc.All() {
			total += v
		}

		return total
	}
}

func sumRaw[T constraints.Unsigned](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}

	return total
}

func sumFOR[T constraints.Unsigned, C Code](codes []C, minValue T) T {
	var total T
	for _, c := range codes {
		total += T(c) + minValue
	}

	return total
}
