package store

import (
	"encoding/binary"
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/paxstore/endian"
)

// RowStore is the row-major layout: a slice of Row in insertion order.
type RowStore struct {
	rows []Row
}

// NewRowStore creates an empty RowStore with room for capacity rows.
func NewRowStore(capacity int) *RowStore {
	return &RowStore{rows: make([]Row, 0, max(capacity, 0))}
}

// NewRowStoreFromColumns copies every row of cs into a new RowStore.
func NewRowStoreFromColumns(cs *ColumnStore) *RowStore {
	s := NewRowStore(cs.Len())
	for i := range cs.ids {
		s.rows = append(s.rows, Row{ID: cs.ids[i], Salary: cs.salaries[i], Firstname: cs.firstnames[i]})
	}

	return s
}

// Kind returns LayoutRow.
func (s *RowStore) Kind() LayoutKind {
	return LayoutRow
}

// Append adds r as the last row.
func (s *RowStore) Append(r Row) {
	s.rows = append(s.rows, r)
}

// Len returns the number of rows.
func (s *RowStore) Len() int {
	return len(s.rows)
}

// Row returns a copy of row i.
func (s *RowStore) Row(i int) (Row, error) {
	if err := checkRow(i, len(s.rows)); err != nil {
		return Row{}, err
	}

	return s.rows[i], nil
}

// All iterates the rows in order.
func (s *RowStore) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range s.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Size returns len × sizeof(Row) plus the store header.
func (s *RowStore) Size() int {
	return len(s.rows)*int(unsafe.Sizeof(Row{})) + int(unsafe.Sizeof(RowStore{}))
}

// SumSalary sums the salary field of every row.
func (s *RowStore) SumSalary() uint64 {
	var total uint64
	for i := range s.rows {
		total += s.rows[i].Salary
	}

	return total
}

// Update sets the name and doubles the salary of each row in ids.
// ids may repeat and be unordered; a repeated id is doubled once per occurrence.
// Returns errs.ErrRowOutOfRange, leaving the store unchanged, if any id is invalid.
func (s *RowStore) Update(ids []int, name Name) error {
	if err := checkRowIDs(ids, len(s.rows)); err != nil {
		return err
	}

	for _, id := range ids {
		r := &s.rows[id]
		r.Firstname = name
		r.Salary *= 2
	}

	return nil
}

// AppendPayload appends the row count and every row as id | salary | name.
func (s *RowStore) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	buf = engine.AppendUint32(buf, uint32(len(s.rows))) //nolint:gosec

	out, err := binary.Append(buf, engine, s.rows)
	if err != nil {
		return buf, fmt.Errorf("row payload: %w", err)
	}

	return out, nil
}
