package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_AllVariants(t *testing.T) {
	tests := []struct {
		name   string
		values []uint64
	}{
		{name: "for1", values: []uint64{10, 20, 30, 265}},
		{name: "for2", values: []uint64{100000, 100400, 160000}},
		{name: "for4", values: []uint64{1, 1 << 31, 1<<32 - 1}},
		{name: "raw", values: []uint64{0, 1 << 40, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want uint64
			for _, v := range tt.values {
				want += v
			}

			enc, err := SelectUnsigned(tt.values)
			require.NoError(t, err)
			require.Equal(t, want, Sum(enc))
			require.Equal(t, want, Sum[uint64](NewRaw(tt.values)))
		})
	}
}

func TestSum_WrapsInNativeWidth(t *testing.T) {
	values := []uint64{math.MaxUint64, 2}
	require.Equal(t, uint64(1), Sum[uint64](NewRaw(values)))

	small := []uint8{200, 100}
	enc, err := SelectUnsigned(small)
	require.NoError(t, err)
	require.Equal(t, uint8(44), Sum(enc))
}
