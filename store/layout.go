package store

import (
	"iter"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/internal/hash"
)

// LayoutKind names a storage layout.
type LayoutKind string

const (
	LayoutRow        LayoutKind = "aos"
	LayoutColumn     LayoutKind = "soa"
	LayoutCompressed LayoutKind = "compressed"
	LayoutPax        LayoutKind = "pax"
)

// SalaryAggregator is implemented by every layout.
type SalaryAggregator interface {
	// SumSalary returns the sum of all salaries with uint64 wraparound.
	SumSalary() uint64
}

// Updater is implemented by the mutable layouts, RowStore and ColumnStore.
type Updater interface {
	// Update sets Firstname to name and doubles Salary for every row in ids.
	Update(ids []int, name Name) error
}

// Layout is the read interface shared by all four stores.
type Layout interface {
	SalaryAggregator

	// Kind identifies the layout.
	Kind() LayoutKind

	// Len returns the number of logical rows.
	Len() int

	// Size returns the owned payload size in bytes plus the fixed store overhead.
	Size() int

	// All iterates the logical rows in row order.
	All() iter.Seq[Row]

	// AppendPayload serialises the store to buf for payload size reporting.
	AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error)
}

var (
	_ Layout = (*RowStore)(nil)
	_ Layout = (*ColumnStore)(nil)
	_ Layout = (*CompressedColumnStore)(nil)
	_ Layout = (*PaxBlockStore)(nil)

	_ Updater = (*RowStore)(nil)
	_ Updater = (*ColumnStore)(nil)
)

// TotalSalary returns s.SumSalary().
func TotalSalary(s SalaryAggregator) uint64 {
	return s.SumSalary()
}

// Digest returns an xxHash64 digest of the rows of l in row order.
// Two layouts holding the same rows produce the same digest.
func Digest(l Layout) uint64 {
	h := hash.NewRowDigest()
	for r := range l.All() {
		h.WriteRow(r.ID, r.Salary, r.Firstname[:])
	}

	return h.Sum64()
}
