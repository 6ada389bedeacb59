// Package hash computes content digests of stored rows with xxHash64.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// RowDigest accumulates an order-sensitive digest over (id, salary, name) rows.
// Integers are hashed little-endian, so digests do not depend on the host byte order.
type RowDigest struct {
	d       *xxhash.Digest
	scratch [16]byte
	rows    int
}

// NewRowDigest creates an empty digest.
func NewRowDigest() *RowDigest {
	return &RowDigest{d: xxhash.New()}
}

// WriteRow adds one row to the digest.
func (h *RowDigest) WriteRow(id, salary uint64, name []byte) {
	binary.LittleEndian.PutUint64(h.scratch[0:8], id)
	binary.LittleEndian.PutUint64(h.scratch[8:16], salary)
	_, _ = h.d.Write(h.scratch[:])
	_, _ = h.d.Write(name)
	h.rows++
}

// Rows returns the number of rows written.
func (h *RowDigest) Rows() int {
	return h.rows
}

// Sum64 returns the current digest.
func (h *RowDigest) Sum64() uint64 {
	return h.d.Sum64()
}

// Reset clears the digest.
func (h *RowDigest) Reset() {
	h.d.Reset()
	h.rows = 0
}
