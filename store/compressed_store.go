package store

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/paxstore/column"
	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/errs"
	"github.com/arloliu/paxstore/format"
)

// Encodings reports the encoding selected for each field.
type Encodings struct {
	ID        format.EncodingType
	Salary    format.EncodingType
	Firstname format.EncodingType
}

func (e Encodings) String() string {
	return fmt.Sprintf("id=%s salary=%s firstname=%s", e.ID, e.Salary, e.Firstname)
}

// CompressedColumnStore holds one encoded column per field for a contiguous
// row range of a ColumnStore. It is immutable once built.
type CompressedColumnStore struct {
	id        column.Encoded[uint64]
	salary    column.Encoded[uint64]
	firstname column.Encoded[Name]
}

// NewCompressedColumnStore encodes rows [start, end) of cs. Each field selects its
// encoding independently.
//
// Returns errs.ErrInvalidRange if the range falls outside cs, errs.ErrEmptyColumn
// if start == end, and errs.ErrColumnLengthMismatch if cs is misaligned.
func NewCompressedColumnStore(cs *ColumnStore, start, end int) (*CompressedColumnStore, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if start < 0 || end > cs.Len() || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d rows", errs.ErrInvalidRange, start, end, cs.Len())
	}

	id, err := column.Select(cs.ids[start:end])
	if err != nil {
		return nil, fmt.Errorf("id column: %w", err)
	}

	salary, err := column.Select(cs.salaries[start:end])
	if err != nil {
		return nil, fmt.Errorf("salary column: %w", err)
	}

	firstname, err := column.Select(cs.firstnames[start:end])
	if err != nil {
		return nil, fmt.Errorf("firstname column: %w", err)
	}

	return &CompressedColumnStore{id: id, salary: salary, firstname: firstname}, nil
}

// CompressColumnStore encodes every row of cs into one CompressedColumnStore.
func CompressColumnStore(cs *ColumnStore, opts ...BuildOption) (*CompressedColumnStore, error) {
	cfg, err := newBuildConfig(opts...)
	if err != nil {
		return nil, err
	}

	done := cfg.startBuild(LayoutCompressed)
	s, err := NewCompressedColumnStore(cs, 0, cs.Len())
	if err != nil {
		return nil, err
	}
	done()
	cfg.observeBlock(s)

	return s, nil
}

// Kind returns LayoutCompressed.
func (s *CompressedColumnStore) Kind() LayoutKind {
	return LayoutCompressed
}

// ID returns the encoded id column.
func (s *CompressedColumnStore) ID() column.Encoded[uint64] {
	return s.id
}

// Salary returns the encoded salary column.
func (s *CompressedColumnStore) Salary() column.Encoded[uint64] {
	return s.salary
}

// Firstname returns the encoded firstname column.
func (s *CompressedColumnStore) Firstname() column.Encoded[Name] {
	return s.firstname
}

// Encodings returns the encoding of each field.
func (s *CompressedColumnStore) Encodings() Encodings {
	return Encodings{ID: s.id.Kind(), Salary: s.salary.Kind(), Firstname: s.firstname.Kind()}
}

// Len returns the number of rows.
func (s *CompressedColumnStore) Len() int {
	return s.id.Len()
}

// Row decodes row i.
func (s *CompressedColumnStore) Row(i int) (Row, error) {
	if err := checkRow(i, s.Len()); err != nil {
		return Row{}, err
	}

	return s.row(i), nil
}

func (s *CompressedColumnStore) row(i int) Row {
	id, _ := s.id.At(i)
	salary, _ := s.salary.At(i)
	name, _ := s.firstname.At(i)

	return Row{ID: id, Salary: salary, Firstname: name}
}

// All iterates the decoded rows in order.
func (s *CompressedColumnStore) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i := range s.Len() {
			if !yield(s.row(i)) {
				return
			}
		}
	}
}

// Size returns the sum of the encoded column sizes plus the store header.
func (s *CompressedColumnStore) Size() int {
	return s.id.Size() + s.salary.Size() + s.firstname.Size() + int(unsafe.Sizeof(CompressedColumnStore{}))
}

// SumSalary reduces the salary column, decoding FOR codes inside the loop.
func (s *CompressedColumnStore) SumSalary() uint64 {
	return column.Sum(s.salary)
}

// AppendPayload appends the id, salary and firstname column payloads.
func (s *CompressedColumnStore) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	out, err := s.id.AppendPayload(buf, engine)
	if err != nil {
		return buf, err
	}
	if out, err = s.salary.AppendPayload(out, engine); err != nil {
		return buf, err
	}
	if out, err = s.firstname.AppendPayload(out, engine); err != nil {
		return buf, err
	}

	return out, nil
}
