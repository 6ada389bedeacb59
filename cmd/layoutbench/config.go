package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arloliu/paxstore/format"
	"github.com/arloliu/paxstore/internal/datagen"
)

const envPrefix = "LAYOUTBENCH"

type config struct {
	Rows        int
	PaxSize     int
	UpdateRatio float64
	Workers     int
	Codecs      []format.CompressionType
	LogLevel    string
	LogFormat   string
	MetricsAddr string
	Seed        uint64
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.Int("rows", datagen.DefaultRows, "number of generated rows")
	fs.Int("pax-size", math.MaxUint16, "rows per PAX block")
	fs.Float64("update-ratio", datagen.UpdateRatio, "share of rows touched by the update workload")
	fs.Int("workers", 1, "goroutines used to build and scan PAX blocks")
	fs.StringSlice("codecs", []string{"none", "zstd", "s2", "lz4"}, "codecs measured by the payload report")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log encoding (console or json)")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	fs.Uint64("seed", 0, "seed for the update ids; 0 picks a random seed")
}

// newViper binds fs and LAYOUTBENCH_* environment variables.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return v, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Rows:        v.GetInt("rows"),
		PaxSize:     v.GetInt("pax-size"),
		UpdateRatio: v.GetFloat64("update-ratio"),
		Workers:     v.GetInt("workers"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		MetricsAddr: v.GetString("metrics-addr"),
		Seed:        v.GetUint64("seed"),
	}

	var errList []error
	if cfg.Rows <= 0 {
		errList = append(errList, fmt.Errorf("rows must be positive, got %d", cfg.Rows))
	}
	if cfg.PaxSize <= 0 {
		errList = append(errList, fmt.Errorf("pax-size must be positive, got %d", cfg.PaxSize))
	}
	if cfg.UpdateRatio < 0 || cfg.UpdateRatio > 1 {
		errList = append(errList, fmt.Errorf("update-ratio must be within [0, 1], got %g", cfg.UpdateRatio))
	}
	if cfg.Workers <= 0 {
		errList = append(errList, fmt.Errorf("workers must be positive, got %d", cfg.Workers))
	}

	for _, name := range v.GetStringSlice("codecs") {
		algo, ok := format.ParseCompressionType(strings.TrimSpace(name))
		if !ok {
			errList = append(errList, fmt.Errorf("unknown codec %q", name))
			continue
		}
		cfg.Codecs = append(cfg.Codecs, algo)
	}

	return cfg, errors.Join(errList...)
}
