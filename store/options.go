package store

import (
	"fmt"
	"time"

	"github.com/arloliu/paxstore/errs"
	"github.com/arloliu/paxstore/format"
	"github.com/arloliu/paxstore/internal/options"
)

// Observer receives build events. internal/metrics.Recorder implements it.
type Observer interface {
	// ObserveBuild records how long building a layout took.
	ObserveBuild(layout string, d time.Duration)
	// ObserveBlock records the salary encoding chosen for one encoded block.
	ObserveBlock(salary format.EncodingType)
}

type buildConfig struct {
	workers  int
	observer Observer
}

// BuildOption configures CompressColumnStore and NewPaxBlockStore.
type BuildOption = options.Option[*buildConfig]

// WithWorkers sets how many blocks are encoded concurrently. The default is 1.
// Returns errs.ErrInvalidWorkers from the constructor if n is not positive.
func WithWorkers(n int) BuildOption {
	return options.New(func(c *buildConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWorkers, n)
		}
		c.workers = n

		return nil
	})
}

// WithObserver reports build timings and block encodings to o.
func WithObserver(o Observer) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.observer = o
	})
}

func newBuildConfig(opts ...BuildOption) (*buildConfig, error) {
	cfg := &buildConfig{workers: 1}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// startBuild returns a func that reports the elapsed build time for layout.
func (c *buildConfig) startBuild(layout LayoutKind) func() {
	if c.observer == nil {
		return func() {}
	}

	start := time.Now()

	return func() {
		c.observer.ObserveBuild(string(layout), time.Since(start))
	}
}

func (c *buildConfig) observeBlock(s *CompressedColumnStore) {
	if c.observer != nil {
		c.observer.ObserveBlock(s.salary.Kind())
	}
}
