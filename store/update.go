package store

import (
	"fmt"

	"github.com/arloliu/paxstore/errs"
)

// checkRowIDs verifies every id addresses one of n rows before any write happens.
func checkRowIDs(ids []int, n int) error {
	for pos, id := range ids {
		if id < 0 || id >= n {
			return fmt.Errorf("%w: ids[%d] = %d, store has %d rows", errs.ErrRowOutOfRange, pos, id, n)
		}
	}

	return nil
}

func checkRow(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: row %d, store has %d rows", errs.ErrRowOutOfRange, i, n)
	}

	return nil
}
