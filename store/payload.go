package store

import (
	"fmt"

	"github.com/arloliu/paxstore/compress"
	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/format"
	"github.com/arloliu/paxstore/internal/pool"
)

// PayloadReport describes the serialised payload of one layout and how well
// each requested codec compresses it.
type PayloadReport struct {
	Layout       LayoutKind
	PayloadBytes int
	Stats        []compress.CompressionStats
}

// Best returns the stats with the smallest compressed size.
// The second return value is false if the report holds no stats.
func (r PayloadReport) Best() (compress.CompressionStats, bool) {
	if len(r.Stats) == 0 {
		return compress.CompressionStats{}, false
	}

	best := r.Stats[0]
	for _, s := range r.Stats[1:] {
		if s.CompressedSize < best.CompressedSize {
			best = s
		}
	}

	return best, true
}

// MeasurePayload serialises l with engine into a pooled buffer and measures
// every codec in algos against the result.
func MeasurePayload(l Layout, engine endian.EndianEngine, algos ...format.CompressionType) (PayloadReport, error) {
	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	var err error
	bb.B, err = l.AppendPayload(bb.B, engine)
	if err != nil {
		return PayloadReport{}, fmt.Errorf("%s payload: %w", l.Kind(), err)
	}

	report := PayloadReport{
		Layout:       l.Kind(),
		PayloadBytes: bb.Len(),
		Stats:        make([]compress.CompressionStats, 0, len(algos)),
	}

	for _, algo := range algos {
		stats, err := compress.Measure(algo, bb.Bytes())
		if err != nil {
			return report, fmt.Errorf("%s payload: %w", l.Kind(), err)
		}
		report.Stats = append(report.Stats, stats)
	}

	return report, nil
}
