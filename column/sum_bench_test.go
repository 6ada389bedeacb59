package column

import "testing"

func benchmarkValues(n int, spread uint64) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = 100_000 + uint64(i)%spread
	}

	return values
}

func BenchmarkSum(b *testing.B) {
	values := benchmarkValues(1<<16, 500)

	raw := NewRaw(values)
	enc, err := SelectUnsigned(values)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Raw", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = Sum[uint64](raw)
		}
	})

	b.Run(enc.Kind().String(), func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = Sum(enc)
		}
	})
}

func BenchmarkSelectUnsigned(b *testing.B) {
	values := benchmarkValues(1<<16, 50_000)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = SelectUnsigned(values)
	}
}
