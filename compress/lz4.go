package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxDecodedPayload bounds the decoded size accepted from a block header.
const maxDecodedPayload = 1 << 30

var errLZ4Header = errors.New("lz4: invalid length prefix")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format.
//
// The block format does not record the decoded size, so Compress prefixes the
// block with a uvarint holding the original length shifted left by one, the low
// bit marking a verbatim block. Decompress allocates exactly that much.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a length-prefixed LZ4 block.
// Incompressible input is stored verbatim and flagged in the prefix.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	// The prefix is at most MaxVarintLen64 bytes, so compress behind the worst case.
	n, err := lc.CompressBlock(data, dst[binary.MaxVarintLen64:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		out := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64+len(data)), uint64(len(data))<<1|1)
		return append(out, data...), nil
	}

	hdr := binary.AppendUvarint(nil, uint64(len(data))<<1)
	start := binary.MaxVarintLen64 - len(hdr)
	copy(dst[start:], hdr)

	return dst[start : binary.MaxVarintLen64+n], nil
}

// Decompress decompresses a block produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	prefix, hdr := binary.Uvarint(data)
	size := prefix >> 1
	if hdr <= 0 || size == 0 || size > maxDecodedPayload {
		return nil, errLZ4Header
	}

	if prefix&1 == 1 {
		if uint64(len(data)-hdr) != size {
			return nil, errLZ4Header
		}

		return append([]byte(nil), data[hdr:]...), nil
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[hdr:], out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out[:n], nil
}
