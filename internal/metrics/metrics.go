// Package metrics exposes layout build, scan and update timings as
// Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arloliu/paxstore/format"
)

const namespace = "paxstore"

// Recorder holds the collectors for one benchmark run.
// It implements store.Observer.
type Recorder struct {
	ScanSeconds   *prometheus.HistogramVec
	BuildSeconds  *prometheus.HistogramVec
	UpdateSeconds *prometheus.HistogramVec
	StoreBytes    *prometheus.GaugeVec
	BlocksEncoded *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	buckets := prometheus.ExponentialBuckets(1e-6, 4, 12) // 1µs .. ~4s

	r := &Recorder{
		ScanSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_seconds",
			Help:      "Duration of one salary aggregation per layout.",
			Buckets:   buckets,
		}, []string{"layout"}),
		BuildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_seconds",
			Help:      "Duration of building a layout from a column store.",
			Buckets:   buckets,
		}, []string{"layout"}),
		UpdateSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_seconds",
			Help:      "Duration of one bulk update per layout.",
			Buckets:   buckets,
		}, []string{"layout"}),
		StoreBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_bytes",
			Help:      "In-memory size of a layout in bytes.",
		}, []string{"layout"}),
		BlocksEncoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_encoded_total",
			Help:      "Encoded blocks by salary column encoding.",
		}, []string{"encoding"}),
	}

	reg.MustRegister(r.ScanSeconds, r.BuildSeconds, r.UpdateSeconds, r.StoreBytes, r.BlocksEncoded)

	return r
}

// ObserveBuild records a layout build duration.
func (r *Recorder) ObserveBuild(layout string, d time.Duration) {
	r.BuildSeconds.WithLabelValues(layout).Observe(d.Seconds())
}

// ObserveBlock counts one encoded block.
func (r *Recorder) ObserveBlock(salary format.EncodingType) {
	r.BlocksEncoded.WithLabelValues(salary.String()).Inc()
}

// ObserveScan records one aggregation duration.
func (r *Recorder) ObserveScan(layout string, d time.Duration) {
	r.ScanSeconds.WithLabelValues(layout).Observe(d.Seconds())
}

// ObserveUpdate records one update duration.
func (r *Recorder) ObserveUpdate(layout string, d time.Duration) {
	r.UpdateSeconds.WithLabelValues(layout).Observe(d.Seconds())
}

// SetStoreBytes records the size of a layout.
func (r *Recorder) SetStoreBytes(layout string, bytes int) {
	r.StoreBytes.WithLabelValues(layout).Set(float64(bytes))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
