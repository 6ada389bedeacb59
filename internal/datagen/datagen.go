// Package datagen produces the synthetic employee table used by the layout benchmark.
package datagen

import (
	"math/rand/v2"

	"github.com/arloliu/paxstore/store"
)

const (
	// DefaultRows is the table size of the full benchmark.
	DefaultRows = 100_000_000

	// UpdateRatio is the share of rows touched by the update workload.
	UpdateRatio = 0.1
)

var (
	// Firstname fills every generated row.
	Firstname = store.NewName("Moritz - Felipe")
	// UpdatedFirstname is written by the update workload.
	UpdatedFirstname = store.NewName("Dr. Moritz - F.")
)

// Salary returns the salary of row i: (1000 + i mod 500) * 100.
func Salary(i int) uint64 {
	return uint64(1000+i%500) * 100 //nolint:gosec
}

// Employees builds a ColumnStore of rows employees. Row i has id i, salary
// Salary(i) and Firstname. The salary column spans 49900, so it encodes as FOR2.
func Employees(rows int) *store.ColumnStore {
	cs := store.NewColumnStore(rows)
	for i := range max(rows, 0) {
		cs.Append(store.Row{ID: uint64(i), Salary: Salary(i), Firstname: Firstname}) //nolint:gosec
	}

	return cs
}

// UpdateIDs draws int(ratio*rows) row ids uniformly from [0, rows), with
// repetition. The same seed yields the same ids.
func UpdateIDs(rows int, ratio float64, seed uint64) []int {
	if rows <= 0 || ratio <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
	ids := make([]int, int(ratio*float64(rows)))
	for i := range ids {
		ids[i] = rng.IntN(rows)
	}

	return ids
}
