// Package errs declares the sentinel errors returned by paxstore.
//
// Call sites wrap these with context using fmt.Errorf("%w: ...") so callers
// can match them with errors.Is.
package errs

import "errors"

var (
	// ErrEmptyColumn is returned when a column or row range has no values to encode.
	ErrEmptyColumn = errors.New("column has no values")
	// ErrInvalidPaxSize is returned when a PAX block size is zero or negative.
	ErrInvalidPaxSize = errors.New("pax size must be positive")
	// ErrInvalidRange is returned when a row range falls outside the source store.
	ErrInvalidRange = errors.New("invalid row range")
	// ErrRowOutOfRange is returned when a row index does not address an existing row.
	ErrRowOutOfRange = errors.New("row index out of range")
	// ErrColumnLengthMismatch is returned when the columns of a column store differ in length.
	ErrColumnLengthMismatch = errors.New("column length mismatch")
	// ErrInvalidWorkers is returned when a worker count is not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")
	// ErrUnsupportedCompression is returned for an unknown payload compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
