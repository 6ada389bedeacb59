package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioColumns builds five rows whose salaries span 400, which fits FOR2 but not FOR1.
func scenarioColumns(t *testing.T) *ColumnStore {
	t.Helper()

	cs, err := NewColumnStoreFromSlices(
		[]uint64{0, 1, 2, 3, 4},
		[]uint64{100000, 100100, 100200, 100300, 100400},
		[]Name{NewName("a"), NewName("b"), NewName("c"), NewName("d"), NewName("e")},
	)
	require.NoError(t, err)

	return cs
}

// employeeColumns fills n rows the way the layout benchmark does.
func employeeColumns(n int) *ColumnStore {
	cs := NewColumnStore(n)
	name := NewName("Moritz - Felipe")
	for i := range n {
		cs.Append(Row{ID: uint64(i), Salary: uint64(1000+i%500) * 100, Firstname: name})
	}

	return cs
}

func buildAll(t *testing.T, cs *ColumnStore, paxSize int) []Layout {
	t.Helper()

	compressed, err := CompressColumnStore(cs)
	require.NoError(t, err)

	pax, err := NewPaxBlockStore(cs, paxSize)
	require.NoError(t, err)

	return []Layout{NewRowStoreFromColumns(cs), cs, compressed, pax}
}
