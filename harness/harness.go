package harness

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// sink keeps the compiler from discarding benchmark bodies.
var sink int

var initTesting sync.Once

// RunConfig holds parameters shared by every case of a run.
type RunConfig struct {
	// BenchTime is the minimum timed duration per case. Zero keeps the
	// testing package default of one second.
	BenchTime time.Duration
}

// Runner times cases one after another.
type Runner struct {
	Config RunConfig
	Logger *slog.Logger
}

// NewRunner creates a Runner and applies cfg.BenchTime to the testing
// package, which reads it from its own flag set.
func NewRunner(cfg RunConfig, logger *slog.Logger) (*Runner, error) {
	if cfg.BenchTime > 0 {
		initTesting.Do(testing.Init)

		if err := flag.Set("test.benchtime", cfg.BenchTime.String()); err != nil {
			return nil, fmt.Errorf("set benchtime %s: %w", cfg.BenchTime, err)
		}
	}

	return &Runner{
		Config: cfg,
		Logger: logger,
	}, nil
}

// Run prepares c, checks its body returns the expected value, and then
// times it.
func (r *Runner) Run(ctx context.Context, c Case) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("case %s: %w", c.Name, err)
	}

	logger := r.Logger.With(slog.String("case", c.Name))

	prep, err := c.Setup()
	if err != nil {
		return nil, fmt.Errorf("setup %s: %w", c.Name, err)
	}

	if got := prep.Body(); got != prep.Want {
		return nil, fmt.Errorf(
			"case %s: result %d, want %d", c.Name, got, prep.Want,
		)
	}

	logger.DebugContext(ctx, "case prepared",
		slog.Int("elements", prep.Elements),
		slog.Int("want", prep.Want),
	)

	body := prep.Body
	bench := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			sink = body()
		}
	})

	if bench.N == 0 {
		return nil, fmt.Errorf("case %s: benchmark did not run", c.Name)
	}

	result := &Result{
		Name:        c.Name,
		Group:       c.Group,
		Elements:    prep.Elements,
		Sum:         prep.Want,
		Iterations:  bench.N,
		NsPerOp:     float64(bench.T.Nanoseconds()) / float64(bench.N),
		AllocsPerOp: bench.AllocsPerOp(),
		BytesPerOp:  bench.AllocedBytesPerOp(),
	}

	if prep.Elements > 0 {
		result.NsPerElement = result.NsPerOp / float64(prep.Elements)
	}

	logger.InfoContext(ctx, "case finished",
		slog.Int("iterations", result.Iterations),
		slog.Float64("ns_per_op", result.NsPerOp),
	)

	return result, nil
}

// RunAll runs cases in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		result, err := r.Run(ctx, c)
		if err != nil {
			return results, err
		}

		results = append(results, *result)
	}

	return results, nil
}
