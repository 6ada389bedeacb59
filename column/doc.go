// Package column implements the encoded column representations used by paxstore
// and the selector that picks one for a sequence of values.
//
// # Variants
//
// The set of variants is closed. Encoded[T] carries an unexported method, so the
// only implementations are the ones declared here:
//
//   - *Raw[T]: values stored unchanged, any fixed-size T
//   - *FOR[T, uint8]: frame-of-reference with 1-byte codes (format.TypeFOR1)
//   - *FOR[T, uint16]: frame-of-reference with 2-byte codes (format.TypeFOR2)
//   - *FOR[T, uint32]: frame-of-reference with 4-byte codes (format.TypeFOR4)
//
// A FOR column stores the column minimum and maximum in T and, for every
// value v, the code v - min in the narrowest width that covers max - min.
// Decoding adds min back, so At(i) always reproduces the original value.
//
// # Selection
//
// Select and SelectUnsigned choose the encoding, never the caller:
//
//	enc, err := column.Select(salaries)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(enc.Kind(), enc.Size())
//
// Thresholds are inclusive and checked in ascending order:
//
//	max - min <= 255        -> FOR1
//	max - min <= 65535      -> FOR2
//	max - min <= 4294967295 -> FOR4
//	otherwise               -> Raw
//
// Non-unsigned element types always select Raw.
//
// # Scanning
//
// All yields decoded values without allocating. Sum reduces an unsigned column
// in its native width, decoding FOR codes inside the reduction loop instead of
// materialising a decoded copy.
//
// # Thread Safety
//
// Encoded columns are immutable after construction and safe for concurrent reads.
package column
