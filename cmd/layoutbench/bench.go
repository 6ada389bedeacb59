package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/paxstore/endian"
	"github.com/arloliu/paxstore/internal/datagen"
	"github.com/arloliu/paxstore/internal/metrics"
	"github.com/arloliu/paxstore/store"
)

const mib = 1024 * 1024

type layouts struct {
	aos        *store.RowStore
	soa        *store.ColumnStore
	compressed *store.CompressedColumnStore
	pax        *store.PaxBlockStore
}

// analyzeOrder matches the order the stores are checked against each other.
func (l *layouts) analyzeOrder() []store.Layout {
	return []store.Layout{l.soa, l.compressed, l.pax, l.aos}
}

type bench struct {
	cfg config
	log *zap.Logger
	rec *metrics.Recorder
	out io.Writer
}

func (b *bench) build() (*layouts, error) {
	start := time.Now()
	soa := datagen.Employees(b.cfg.Rows)
	aos := store.NewRowStoreFromColumns(soa)
	b.log.Info("generated rows", zap.Int("rows", soa.Len()), zap.Duration("took", time.Since(start)))

	compressed, err := store.CompressColumnStore(soa, store.WithObserver(b.rec))
	if err != nil {
		return nil, fmt.Errorf("build compressed store: %w", err)
	}
	b.log.Debug("built compressed store", zap.Stringer("encodings", compressed.Encodings()))

	pax, err := store.NewPaxBlockStore(soa, b.cfg.PaxSize,
		store.WithWorkers(b.cfg.Workers),
		store.WithObserver(b.rec),
	)
	if err != nil {
		return nil, fmt.Errorf("build pax store: %w", err)
	}
	for enc, n := range pax.EncodingHistogram() {
		b.log.Debug("pax salary encoding", zap.Stringer("encoding", enc), zap.Int("blocks", n))
	}

	return &layouts{aos: aos, soa: soa, compressed: compressed, pax: pax}, nil
}

// analyze sums the salary column of every layout and fails if any total
// differs from the first.
func (b *bench) analyze(l *layouts) (uint64, error) {
	var want uint64
	for i, s := range l.analyzeOrder() {
		start := time.Now()
		got := s.SumSalary()
		took := time.Since(start)

		b.rec.ObserveScan(string(s.Kind()), took)
		b.rec.SetStoreBytes(string(s.Kind()), s.Size())
		fmt.Fprintf(b.out, "Workload: Analyze; Store: %s; Time: %d [μs]; Size: %d [MB]\n",
			s.Kind(), took.Microseconds(), s.Size()/mib)

		if i == 0 {
			want = got
			continue
		}
		if got != want {
			return 0, fmt.Errorf("salary mismatch: %s=%d, %s=%d", l.soa.Kind(), want, s.Kind(), got)
		}
	}

	if b.cfg.Workers > 1 {
		start := time.Now()
		got, err := l.pax.SumSalaryParallel(b.cfg.Workers)
		if err != nil {
			return 0, err
		}
		took := time.Since(start)
		fmt.Fprintf(b.out, "Workload: Analyze; Store: pax/%d; Time: %d [μs]\n", b.cfg.Workers, took.Microseconds())
		if got != want {
			return 0, fmt.Errorf("salary mismatch: parallel pax=%d, want %d", got, want)
		}
	}

	b.log.Info("analyze finished", zap.Uint64("total_salary", want))

	return want, nil
}

// update applies the same random ids to both mutable layouts and fails if
// they disagree afterwards.
func (b *bench) update(l *layouts) error {
	seed := b.cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	ids := datagen.UpdateIDs(l.soa.Len(), b.cfg.UpdateRatio, seed)
	b.log.Info("update ids drawn", zap.Int("ids", len(ids)), zap.Uint64("seed", seed))

	for _, u := range []interface {
		store.Updater
		store.Layout
	}{l.aos, l.soa} {
		start := time.Now()
		if err := u.Update(ids, datagen.UpdatedFirstname); err != nil {
			return fmt.Errorf("update %s: %w", u.Kind(), err)
		}
		took := time.Since(start)

		b.rec.ObserveUpdate(string(u.Kind()), took)
		fmt.Fprintf(b.out, "Workload: Update; Store: %s; Time: %d [μs]\n", u.Kind(), took.Microseconds())
	}

	if store.Digest(l.aos) != store.Digest(l.soa) {
		return fmt.Errorf("update diverged between %s and %s", l.aos.Kind(), l.soa.Kind())
	}

	return nil
}

// payload prints how well each codec compresses the serialised layouts.
func (b *bench) payload(l *layouts) error {
	engine := endian.GetLittleEndianEngine()

	for _, s := range l.analyzeOrder() {
		report, err := store.MeasurePayload(s, engine, b.cfg.Codecs...)
		if err != nil {
			return err
		}

		for _, st := range report.Stats {
			fmt.Fprintf(b.out, "Payload: %s; Codec: %s; Raw: %d [B]; Compressed: %d [B]; Ratio: %.3f\n",
				report.Layout, st.Algorithm, st.OriginalSize, st.CompressedSize, st.CompressionRatio())
		}
		if best, ok := report.Best(); ok {
			b.log.Debug("best codec", zap.String("layout", string(report.Layout)),
				zap.Stringer("codec", best.Algorithm), zap.Float64("savings_pct", best.SpaceSavings()))
		}
	}

	return nil
}
