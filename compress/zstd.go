package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is chosen at build time: zstd_pure.go (klauspost/compress)
// by default, zstd_cgo.go (valyala/gozstd) with -tags gozstd and cgo enabled.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
