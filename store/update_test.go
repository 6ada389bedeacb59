package store

import (
	"testing"

	"github.com/arloliu/paxstore/errs"
	"github.com/stretchr/testify/require"
)

func TestUpdate_RowAndColumnStoreAgree(t *testing.T) {
	cs := employeeColumns(100)
	rs := NewRowStoreFromColumns(cs)
	before := cs.Salaries()

	ids := []int{42, 7, 99, 7, 0}
	name := NewName("Dr. Moritz - F.")

	require.NoError(t, rs.Update(ids, name))
	require.NoError(t, cs.Update(ids, name))

	require.Equal(t, rs.SumSalary(), cs.SumSalary())
	require.Equal(t, Digest(rs), Digest(cs))

	updated := map[int]int{}
	for _, id := range ids {
		updated[id]++
	}

	for i := range 100 {
		r, err := cs.Row(i)
		require.NoError(t, err)

		n, ok := updated[i]
		if !ok {
			require.Equal(t, before[i], r.Salary)
			require.Equal(t, "Moritz - Felipe", r.Firstname.String())

			continue
		}
		// A repeated id doubles once per occurrence.
		require.Equal(t, before[i]<<n, r.Salary)
		require.Equal(t, name, r.Firstname)
	}
}

func TestUpdate_OutOfRangeLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
	}{
		{name: "past end", ids: []int{1, 2, 10}},
		{name: "negative", ids: []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := employeeColumns(10)
			rs := NewRowStoreFromColumns(cs)
			digest := Digest(cs)

			for _, u := range []interface {
				Updater
				Layout
			}{rs, cs} {
				err := u.Update(tt.ids, NewName("x"))
				require.ErrorIs(t, err, errs.ErrRowOutOfRange)
				require.Equal(t, digest, Digest(u))
			}
		})
	}
}

func TestUpdate_EmptyIDs(t *testing.T) {
	cs := employeeColumns(5)
	digest := Digest(cs)

	require.NoError(t, cs.Update(nil, NewName("x")))
	require.Equal(t, digest, Digest(cs))
}

func TestUpdate_DerivedStoresGoStale(t *testing.T) {
	cs := employeeColumns(20)
	compressed, err := CompressColumnStore(cs)
	require.NoError(t, err)
	sum := compressed.SumSalary()

	require.NoError(t, cs.Update([]int{1, 2, 3}, NewName("x")))
	require.Equal(t, sum, compressed.SumSalary())
	require.NotEqual(t, sum, cs.SumSalary())
}
