package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "Reset should keep capacity")
}

func TestByteBufferPool_GetReturnsEmpty(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, "payload"...)
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len())
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	big := NewByteBuffer(64)
	big.B = append(big.B, "data"...)
	p.Put(big)

	// Oversized buffers are discarded without a reset.
	assert.Equal(t, 4, big.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(4, 0)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	PutPayloadBuffer(bb)
}
