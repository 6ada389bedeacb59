package store

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/errs"
	"github.com/arloliu/paxstore/format"
	"golang.org/x/sync/errgroup"
)

// PaxBlockStore partitions the rows of a ColumnStore into blocks of paxSize
// rows and encodes every block independently. The last block may be shorter.
type PaxBlockStore struct {
	blocks  []*CompressedColumnStore
	paxSize int
	rows    int
}

// NewPaxBlockStore builds ceil(cs.Len() / paxSize) blocks, block b covering
// rows [b*paxSize, min((b+1)*paxSize, cs.Len())).
//
// With WithWorkers(n > 1) blocks are encoded concurrently; block order is
// unaffected.
//
// Returns errs.ErrInvalidPaxSize if paxSize <= 0 and errs.ErrEmptyColumn if cs is empty.
func NewPaxBlockStore(cs *ColumnStore, paxSize int, opts ...BuildOption) (*PaxBlockStore, error) {
	if paxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPaxSize, paxSize)
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	rows := cs.Len()
	if rows == 0 {
		return nil, fmt.Errorf("%w: pax store needs at least one row", errs.ErrEmptyColumn)
	}

	cfg, err := newBuildConfig(opts...)
	if err != nil {
		return nil, err
	}

	done := cfg.startBuild(LayoutPax)
	// (rows-1)/paxSize + 1 is ceil(rows/paxSize) without overflowing for large paxSize.
	blocks := make([]*CompressedColumnStore, (rows-1)/paxSize+1)

	build := func(b int) error {
		start := b * paxSize
		end := start + min(paxSize, rows-start)

		blk, err := NewCompressedColumnStore(cs, start, end)
		if err != nil {
			return fmt.Errorf("block %d: %w", b, err)
		}
		blocks[b] = blk

		return nil
	}

	if cfg.workers <= 1 || len(blocks) == 1 {
		for b := range blocks {
			if err := build(b); err != nil {
				return nil, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for b := range blocks {
			g.Go(func() error { return build(b) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	done()
	for _, blk := range blocks {
		cfg.observeBlock(blk)
	}

	return &PaxBlockStore{blocks: blocks, paxSize: paxSize, rows: rows}, nil
}

// Kind returns LayoutPax.
func (s *PaxBlockStore) Kind() LayoutKind {
	return LayoutPax
}

// PaxSize returns the configured block size in rows.
func (s *PaxBlockStore) PaxSize() int {
	return s.paxSize
}

// NumBlocks returns the number of blocks.
func (s *PaxBlockStore) NumBlocks() int {
	return len(s.blocks)
}

// Block returns block b.
func (s *PaxBlockStore) Block(b int) (*CompressedColumnStore, error) {
	if b < 0 || b >= len(s.blocks) {
		return nil, fmt.Errorf("%w: block %d of %d", errs.ErrInvalidRange, b, len(s.blocks))
	}

	return s.blocks[b], nil
}

// Blocks iterates the blocks in row order.
func (s *PaxBlockStore) Blocks() iter.Seq2[int, *CompressedColumnStore] {
	return func(yield func(int, *CompressedColumnStore) bool) {
		for b, blk := range s.blocks {
			if !yield(b, blk) {
				return
			}
		}
	}
}

// EncodingHistogram counts blocks by the encoding chosen for their salary column.
func (s *PaxBlockStore) EncodingHistogram() map[format.EncodingType]int {
	hist := make(map[format.EncodingType]int, len(format.EncodingTypes))
	for _, blk := range s.blocks {
		hist[blk.salary.Kind()]++
	}

	return hist
}

// Len returns the total number of rows.
func (s *PaxBlockStore) Len() int {
	return s.rows
}

// Row decodes logical row i.
func (s *PaxBlockStore) Row(i int) (Row, error) {
	if err := checkRow(i, s.rows); err != nil {
		return Row{}, err
	}

	return s.blocks[i/s.paxSize].row(i % s.paxSize), nil
}

// All iterates the decoded rows of every block in order.
func (s *PaxBlockStore) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, blk := range s.blocks {
			for r := range blk.All() {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Size returns the sum of the block sizes plus the store header.
func (s *PaxBlockStore) Size() int {
	size := int(unsafe.Sizeof(PaxBlockStore{}))
	for _, blk := range s.blocks {
		size += blk.Size()
	}

	return size
}

// SumSalary adds up the per-block salary sums.
func (s *PaxBlockStore) SumSalary() uint64 {
	var total uint64
	for _, blk := range s.blocks {
		total += blk.SumSalary()
	}

	return total
}

// SumSalaryParallel splits the blocks into at most workers contiguous ranges,
// sums each range in its own goroutine and merges the partial sums.
// The result equals SumSalary.
//
// Returns errs.ErrInvalidWorkers if workers is not positive.
func (s *PaxBlockStore) SumSalaryParallel(workers int) (uint64, error) {
	if workers <= 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidWorkers, workers)
	}

	workers = min(workers, len(s.blocks))
	partials := make([]uint64, workers)

	q, r := len(s.blocks)/workers, len(s.blocks)%workers
	start := 0

	var g errgroup.Group
	for w := range workers {
		size := q
		if w < r {
			size++
		}
		part := s.blocks[start : start+size]
		g.Go(func() error {
			var sum uint64
			for _, blk := range part {
				sum += blk.SumSalary()
			}
			partials[w] = sum

			return nil
		})
		start += size
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, p := range partials {
		total += p
	}

	return total, nil
}

// AppendPayload appends the block count followed by every block payload.
func (s *PaxBlockStore) AppendPayload(buf []byte, engine endian.EndianEngine) ([]byte, error) {
	out := engine.AppendUint32(buf, uint32(len(s.blocks))) //nolint:gosec

	var err error
	for b, blk := range s.blocks {
		if out, err = blk.AppendPayload(out, engine); err != nil {
			return buf, fmt.Errorf("block %d: %w", b, err)
		}
	}

	return out, nil
}
