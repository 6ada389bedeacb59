package store

import (
	"testing"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPayload_Headers(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	cs := scenarioColumns(t)

	rowPayload, err := NewRowStoreFromColumns(cs).AppendPayload(nil, engine)
	require.NoError(t, err)
	require.Len(t, rowPayload, 4+5*32)
	require.Equal(t, uint32(5), engine.Uint32(rowPayload))

	colPayload, err := cs.AppendPayload(nil, engine)
	require.NoError(t, err)
	require.Len(t, colPayload, 4+5*32)

	pax, err := NewPaxBlockStore(cs, 2)
	require.NoError(t, err)
	paxPayload, err := pax.AppendPayload([]byte{0xff}, engine)
	require.NoError(t, err)
	require.Equal(t, byte(0xff), paxPayload[0], "existing bytes are kept")
	require.Equal(t, uint32(3), engine.Uint32(paxPayload[1:]))
}

func TestMeasurePayload(t *testing.T) {
	cs := employeeColumns(2000)
	compressed, err := CompressColumnStore(cs)
	require.NoError(t, err)

	algos := []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4}

	for _, l := range []Layout{cs, compressed} {
		report, err := MeasurePayload(l, endian.GetLittleEndianEngine(), algos...)
		require.NoError(t, err)
		require.Equal(t, l.Kind(), report.Layout)
		require.Len(t, report.Stats, len(algos))

		for i, s := range report.Stats {
			assert.Equal(t, algos[i], s.Algorithm)
			assert.Equal(t, int64(report.PayloadBytes), s.OriginalSize)
		}

		best, ok := report.Best()
		require.True(t, ok)
		assert.NotEqual(t, format.CompressionNone, best.Algorithm, "repetitive payload should compress")
	}
}

func TestMeasurePayload_UnknownCodec(t *testing.T) {
	_, err := MeasurePayload(employeeColumns(4), endian.GetLittleEndianEngine(), format.CompressionType(99))
	require.Error(t, err)

	_, ok := PayloadReport{}.Best()
	require.False(t, ok)
}
