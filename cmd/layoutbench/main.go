// Command layoutbench compares the salary scan and bulk update cost of the
// row, column, compressed and PAX layouts over a synthetic employee table.
package main

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/paxstore/internal/logger"
	"github.com/arloliu/paxstore/internal/metrics"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type workload func(b *bench, l *layouts) error

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "layoutbench",
		Short:         "Compare row, column, compressed and PAX layouts",
		SilenceUsage:  true,
		RunE: runWith(out, func(b *bench, l *layouts) error {
			if _, err := b.analyze(l); err != nil {
				return err
			}
			return b.update(l)
		}),
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "analyze",
			Short: "Sum the salary column of every layout",
			RunE: runWith(out, func(b *bench, l *layouts) error {
				_, err := b.analyze(l)
				return err
			}),
		},
		&cobra.Command{
			Use:   "update",
			Short: "Rename and double the salary of random rows in the mutable layouts",
			RunE: runWith(out, func(b *bench, l *layouts) error {
				return b.update(l)
			}),
		},
		&cobra.Command{
			Use:   "payload",
			Short: "Report serialised layout sizes under each codec",
			RunE: runWith(out, func(b *bench, l *layouts) error {
				return b.payload(l)
			}),
		},
	)

	return root
}

func runWith(out io.Writer, run workload) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}

		log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogFormat})
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		reg := prometheus.NewRegistry()
		b := &bench{cfg: cfg, log: log, rec: metrics.NewRecorder(reg), out: out}

		if cfg.MetricsAddr != "" {
			stop := serveMetrics(cfg.MetricsAddr, reg, log)
			defer stop()
		}

		l, err := b.build()
		if err != nil {
			log.Error("build failed", zap.Error(err))
			return err
		}

		if err := run(b, l); err != nil {
			log.Error("workload failed", zap.Error(err))
			return err
		}

		return nil
	}
}

func serveMetrics(addr string, g prometheus.Gatherer, log *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("metrics server shutdown", zap.Error(err))
		}
	}
}

func randomSeed() uint64 {
	return rand.Uint64() //nolint:gosec
}
