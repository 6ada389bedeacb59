// Package store holds the four layouts compared by paxstore and the two
// operations defined over them.
//
// # Layouts
//
//   - RowStore (LayoutRow, "aos"): one Row per record, fields contiguous.
//   - ColumnStore (LayoutColumn, "soa"): one slice per field, aligned by index.
//   - CompressedColumnStore (LayoutCompressed, "compressed"): one encoded
//     column per field, each encoding selected independently by column.Select.
//   - PaxBlockStore (LayoutPax, "pax"): the row range cut into blocks of
//     paxSize rows, every block an independent CompressedColumnStore.
//
// Every derived store is built by copying from a ColumnStore; no backing array
// is shared. Compressed and PAX stores are read-only after construction and go
// stale if the source is later updated.
//
// # Operations
//
// SumSalary is defined on every layout and returns the same value for the same
// rows, with uint64 wraparound:
//
//	cs := store.NewColumnStore(0)
//	cs.Append(store.Row{ID: 0, Salary: 100000, Firstname: store.NewName("Moritz")})
//
//	pax, err := store.NewPaxBlockStore(cs, 1<<16)
//	if err != nil {
//	    return err
//	}
//	total := pax.SumSalary()
//
// Update is defined only on RowStore and ColumnStore. It sets the name and
// doubles the salary of every listed row, validating all indexes first.
//
// # Thread Safety
//
// Stores are not safe for concurrent mutation. Compressed and PAX stores may be
// read from many goroutines; PaxBlockStore.SumSalaryParallel does so internally.
package store
