package column

import (
	"testing"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
	"github.com/stretchr/testify/require"
)

func TestRaw_Basics(t *testing.T) {
	raw := NewRaw([]uint64{3, 1, 2})

	require.Equal(t, format.TypeRaw, raw.Kind())
	require.Equal(t, 3, raw.Len())
	require.Equal(t, 24, raw.Size())

	v, ok := raw.At(1)
	require.True(t, ok)
	require.Equal(t, uint64(1), v)

	_, ok = raw.At(3)
	require.False(t, ok)

	var got []uint64
	for v := range raw.All() {
		got = append(got, v)
	}
	require.Equal(t, []uint64{3, 1, 2}, got)
}

func TestRaw_AppendPayload(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	names := NewRaw([][16]byte{{'a', 'b'}, {'c'}})
	buf, err := names.AppendPayload(nil, engine)
	require.NoError(t, err)
	require.Len(t, buf, 1+4+32)
	require.Equal(t, byte(format.TypeRaw), buf[0])
	require.Equal(t, byte('a'), buf[5])
	require.Equal(t, byte('c'), buf[21])

	ints := NewRaw([]int64{-1})
	buf, err = ints.AppendPayload(nil, engine)
	require.NoError(t, err)
	require.Len(t, buf, 1+4+8)
}

func TestRaw_AppendPayloadVariableSize(t *testing.T) {
	raw := NewRaw([]string{"not", "fixed"})

	buf, err := raw.AppendPayload([]byte{1}, endian.GetLittleEndianEngine())
	require.Error(t, err)
	require.Equal(t, byte(1), buf[0])
}
