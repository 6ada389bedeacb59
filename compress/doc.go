// Package compress provides general-purpose codecs applied to serialised
// paxstore payloads.
//
// Column encodings (Raw, FOR1/2/4) exploit value ranges; these codecs
// exploit byte-level redundancy on top of them. paxstore uses them only to
// report how much further a layout would shrink, never as a storage format.
//
// # Supported Algorithms
//
//   - format.CompressionNone: returns the input unchanged
//   - format.CompressionZstd: klauspost/compress/zstd, or valyala/gozstd when
//     built with the gozstd tag and cgo enabled
//   - format.CompressionS2: klauspost/compress/s2
//   - format.CompressionLZ4: pierrec/lz4 block format
//
// # Usage
//
//	stats, err := compress.Measure(format.CompressionZstd, payload)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
