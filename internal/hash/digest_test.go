package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestRowDigest_MatchesXXHash(t *testing.T) {
	h := NewRowDigest()
	h.WriteRow(1, 2, []byte("ab"))

	want := xxhash.Sum64([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 'a', 'b'})
	require.Equal(t, want, h.Sum64())
	require.Equal(t, 1, h.Rows())
}

func TestRowDigest_OrderSensitive(t *testing.T) {
	a := NewRowDigest()
	a.WriteRow(1, 10, []byte("x"))
	a.WriteRow(2, 20, []byte("y"))

	b := NewRowDigest()
	b.WriteRow(2, 20, []byte("y"))
	b.WriteRow(1, 10, []byte("x"))

	require.NotEqual(t, a.Sum64(), b.Sum64())
}

func TestRowDigest_Reset(t *testing.T) {
	h := NewRowDigest()
	empty := h.Sum64()

	h.WriteRow(7, 8, nil)
	require.NotEqual(t, empty, h.Sum64())

	h.Reset()
	require.Equal(t, empty, h.Sum64())
	require.Equal(t, 0, h.Rows())
}
