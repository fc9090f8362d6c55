// Command ayabench times the geometry kernel on synthetic workloads and logs a checksum
// per workload, so packed and scalar builds can be compared for speed and agreement.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

type result struct {
	Name     string
	Checksum uint64
	Elapsed  time.Duration
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := LoadConfigFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *zap.Logger) ([]result, error) {
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("starting",
		zap.Bool("simd", simd.Enabled),
		zap.Bool("fast_math", mathutil.FastMath),
		zap.Int("size", cfg.Size),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("workers", cfg.Workers),
	)

	start := time.Now()
	ds, err := newDataset(ctx, cfg.Size, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}
	logger.Debug("dataset ready", zap.Duration("elapsed", time.Since(start)))

	results := make([]result, 0, len(cfg.Workloads))
	for _, name := range cfg.Workloads {
		w, ok := workloads[name]
		if !ok {
			return results, fmt.Errorf("unknown workload: %s", name)
		}

		start := time.Now()
		sum, err := w(ctx, ds, cfg)
		if err != nil {
			return results, fmt.Errorf("workload %s: %w", name, err)
		}
		elapsed := time.Since(start)

		ops := float64(cfg.Iterations) * float64(cfg.Size)
		logger.Info("workload done",
			zap.String("workload", name),
			zap.Int("iterations", cfg.Iterations),
			zap.Duration("elapsed", elapsed),
			zap.Float64("ns_per_op", float64(elapsed.Nanoseconds())/ops),
			zap.String("checksum", fmt.Sprintf("%016x", sum)),
		)
		results = append(results, result{Name: name, Checksum: sum, Elapsed: elapsed})
	}
	return results, nil
}
