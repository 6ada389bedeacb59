package store

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/errs"
)

// ColumnStore is the column-major layout. Position i of every column belongs
// to logical row i; all columns always have the same length.
type ColumnStore struct {
	ids        []uint64
	salaries   []uint64
	firstnames []Name
}

// NewColumnStore creates an empty ColumnStore with room for capacity rows.
func NewColumnStore(capacity int) *ColumnStore {
	capacity = max(capacity, 0)

	return &ColumnStore{
		ids:        make([]uint64, 0, capacity),
		salaries:   make([]uint64, 0, capacity),
		firstnames: make([]Name, 0, capacity),
	}
}

// NewColumnStoreFromSlices creates a ColumnStore owning copies of the given columns.
// Returns errs.ErrColumnLengthMismatch if the slices differ in length.
func NewColumnStoreFromSlices(ids, salaries []uint64, firstnames []Name) (*ColumnStore, error) {
	if len(ids) != len(salaries) || len(ids) != len(firstnames) {
		return nil, fmt.Errorf("%w: ids=%d salaries=%d firstnames=%d",
			errs.ErrColumnLengthMismatch, len(ids), len(salaries), len(firstnames))
	}

	return &ColumnStore{
		ids:        slices.Clone(ids),
		salaries:   slices.Clone(salaries),
		firstnames: slices.Clone(firstnames),
	}, nil
}

// NewColumnStoreFromRows copies every row of rs into a new ColumnStore.
func NewColumnStoreFromRows(rs *RowStore) *ColumnStore {
	s := NewColumnStore(rs.Len())
	for _, r := range rs.rows {
		s.Append(r)
	}

	return s
}

// Kind returns LayoutColumn.
func (s *ColumnStore) Kind() LayoutKind {
	return LayoutColumn
}

// Append adds r as the last row.
func (s *ColumnStore) Append(r Row) {
	s.ids = append(s.ids, r.ID)
	s.salaries = append(s.salaries, r.Salary)
	s.firstnames = append(s.firstnames, r.Firstname)
}

// Len returns the number of rows.
func (s *ColumnStore) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the id column.
func (s *ColumnStore) IDs() []uint64 {
	return slices.Clone(s.ids)
}

// Salaries returns a copy of the salary column.
func (s *ColumnStore) Salaries() []uint64 {
	return slices.Clone(s.salaries)
}

// Firstnames returns a copy of the firstname column.
func (s *ColumnStore) Firstnames() []Name {
	return slices.Clone(s.firstnames)
}

// Row assembles row i from the three columns.
func (s *ColumnStore) Row(i int) (Row, error) {
	if err := checkRow(i, len(s.ids)); err != nil {
		return Row{}, err
	}

	return Row{ID: s.ids[i], Salary: s.salaries[i], Firstname: s.firstnames[i]}, nil
}

// All iterates the logical rows in order.
func (s *ColumnStore) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i := range s.ids {
			if !yield(Row{ID: s.ids[i], Salary: s.salaries[i], Firstname: s.firstnames[i]}) {
				return
			}
		}
	}
}

// Validate reports errs.ErrColumnLengthMismatch if the columns are misaligned.
func (s *ColumnStore) Validate() error {
	if len(s.salaries) != len(s.ids) || len(s.firstnames) != len(s.ids) {
		return fmt.Errorf("%w: ids=%d salaries=%d firstnames=%d",
			errs.ErrColumnLengthMismatch, len(s.ids), len(s.salaries), len(s.firstnames))
	}

	return nil
}

// Size returns the three column payloads plus the store header.
func (s *ColumnStore) Size() int {
	size := len(s.ids) * int(unsafe.Sizeof(uint64(0)))
	size += len(s.salaries) * int(unsafe.Sizeof(uint64(0)))
	size += len(s.firstnames) * NameSize

	return size + int(unsafe.Sizeof(ColumnStore{}))
}

// SumSalary sums the salary column.
func (s *ColumnStore) SumSalary() uint64 {
	var total uint64
	for _, v := range s.salaries {
		total += v
	}

	return total
}

// Update sets the firstname and doubles the salary at each index in ids.
// ids may repeat and be unordered; a repeated id is doubled once per occurrence.
// Returns errs.ErrRowOutOfRange, leaving the store unchanged, if any id is invalid.
func (s *ColumnStore) Update(ids []int, name Name) error {
	if err := checkRowIDs(ids, len(s.ids)); err != nil {
		return err
	}

	for _, id := range ids {
		s.firstnames[id] = name
		s.salaries[id] *= 2
	}

	return nil
}

// AppendPayload appends the row count followed by the id, salary and firstname columns.
func (s *ColumnStore) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	out := engine.AppendUint32(buf, uint32(len(s.ids))) //nolint:gosec

	var err error
	for _, col := range []any{s.ids, s.salaries, s.firstnames} {
		if out, err = binary.Append(out, engine, col); err != nil {
			return buf, fmt.Errorf("column payload: %w", err)
		}
	}

	return out, nil
}
