package column

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
	"github.com/stretchr/testify/require"
)

func TestFOR_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, spread := range []uint64{1, 200, 255, 4_000, 65_535, 1 << 20, 1<<32 - 1} {
		values := make([]uint64, 1_000)
		base := rng.Uint64N(1 << 40)
		for i := range values {
			values[i] = base + rng.Uint64N(spread+1)
		}

		enc, err := SelectUnsigned(values)
		require.NoError(t, err)
		require.True(t, enc.Kind().IsFOR(), "spread %d selected %s", spread, enc.Kind())
		require.Equal(t, len(values), enc.Len())

		for i, want := range values {
			got, ok := enc.At(i)
			require.True(t, ok)
			require.Equal(t, want, got, "index %d", i)
		}

		i := 0
		for v := range enc.All() {
			require.Equal(t, values[i], v)
			i++
		}
		require.Equal(t, len(values), i)
	}
}

func TestFOR_Size(t *testing.T) {
	values := []uint64{100000, 100100, 100200, 100300, 100400}
	enc, err := SelectUnsigned(values)
	require.NoError(t, err)

	// 5 codes × 2 bytes + min/max header
	require.Equal(t, 5*2+16, enc.Size())

	small := []uint32{7, 8, 9}
	enc32, err := SelectUnsigned(small)
	require.NoError(t, err)
	require.Equal(t, format.TypeFOR1, enc32.Kind())
	require.Equal(t, 3*1+8, enc32.Size())
}

func TestFOR_AtOutOfRange(t *testing.T) {
	enc, err := SelectUnsigned([]uint64{1, 2})
	require.NoError(t, err)

	_, ok := enc.At(-1)
	require.False(t, ok)
	_, ok = enc.At(2)
	require.False(t, ok)
}

func TestFOR_AllStopsEarly(t *testing.T) {
	enc, err := SelectUnsigned([]uint64{5, 6, 7, 8})
	require.NoError(t, err)

	var seen []uint64
	for v := range enc.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []uint64{5, 6}, seen)
}

func TestFOR_AppendPayload(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc, err := SelectUnsigned([]uint64{100000, 100100, 100200, 100300, 100400})
	require.NoError(t, err)

	buf, err := enc.AppendPayload(nil, engine)
	require.NoError(t, err)
	require.Len(t, buf, 1+4+16+5*2)
	require.Equal(t, byte(format.TypeFOR2), buf[0])
	require.Equal(t, uint32(5), engine.Uint32(buf[1:5]))
	require.Equal(t, uint64(100000), engine.Uint64(buf[5:13]))
	require.Equal(t, uint64(100400), engine.Uint64(buf[13:21]))
	require.Equal(t, uint16(100), engine.Uint16(buf[23:25]))
}

func TestFOR_AppendPayloadBigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	enc, err := SelectUnsigned([]uint32{10, 11})
	require.NoError(t, err)

	buf, err := enc.AppendPayload([]byte{0xff}, engine)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, byte(format.TypeFOR1), 0, 0, 0, 2, 0, 0, 0, 10, 0, 0, 0, 11, 0, 1}, buf)
}
