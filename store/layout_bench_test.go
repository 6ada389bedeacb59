package store

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkSumSalary(b *testing.B) {
	cs := employeeColumns(1 << 20)

	compressed, err := CompressColumnStore(cs)
	if err != nil {
		b.Fatal(err)
	}
	pax, err := NewPaxBlockStore(cs, math.MaxUint16)
	if err != nil {
		b.Fatal(err)
	}

	for _, l := range []Layout{NewRowStoreFromColumns(cs), cs, compressed, pax} {
		b.Run(string(l.Kind()), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = l.SumSalary()
			}
		})
	}

	b.Run("pax-parallel", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = pax.SumSalaryParallel(4)
		}
	})
}

func BenchmarkNewPaxBlockStore(b *testing.B) {
	cs := employeeColumns(1 << 18)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = NewPaxBlockStore(cs, 4096, WithWorkers(workers))
			}
		})
	}
}

func BenchmarkUpdate(b *testing.B) {
	cs := employeeColumns(1 << 18)
	rs := NewRowStoreFromColumns(cs)

	ids := make([]int, cs.Len()/10)
	for i := range ids {
		ids[i] = (i * 7919) % cs.Len()
	}
	name := NewName("Dr. Moritz - F.")

	for _, u := range []Updater{rs, cs} {
		b.Run(string(u.(Layout).Kind()), func(b *testing.B) {
			for b.Loop() {
				_ = u.Update(ids, name)
			}
		})
	}
}
