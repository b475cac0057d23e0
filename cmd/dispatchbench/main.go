// Package main provides the CLI entry point for dispatchbench, a harness
// timing interface dispatch over collections of varying type diversity.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/weiihann/dispatchbench/config"
	"github.com/weiihann/dispatchbench/harness"
	"github.com/weiihann/dispatchbench/processor"
	"github.com/weiihann/dispatchbench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger, os.Stdout)
	if err := root.Execute(); err != nil {
		logger.Error("dispatchbench failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "dispatchbench",
		Short: "Interface dispatch microbenchmarks",
		Long: `Dispatchbench times interface method calls over collections holding
one to twenty distinct concrete types, laid out sorted or shuffled, alongside
switch, table, closure and loop-shape baselines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger, out))
	root.AddCommand(newListCmd(out))
	root.AddCommand(newKindsCmd(out))

	return root
}

func newRunCmd(logger *slog.Logger, out io.Writer) *cobra.Command {
	var (
		flagged    config.Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "run [case...]",
		Short: "Run benchmark cases and print a comparison",
		Long: `Build each selected case's data set once, check its result, and time
it with the Go testing package. Settings come from --config, with explicitly
set flags taking precedence. Case names given as arguments are run in that
order instead of the group and --bench selection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := config.Load(configPath)
			if err != nil {
				return err
			}

			cfg := config.Merge(base, flagged, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBenchmark(cmd.Context(), logger, out, cfg, args)
		},
	}

	flags := cmd.Flags()
	flagged.Flags(flags)
	flags.StringVar(&configPath, "config", "",
		"Path to a YAML settings file")

	return cmd
}

func newListCmd(out io.Writer) *cobra.Command {
	var (
		flagged    config.Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "list [case...]",
		Short: "List benchmark cases by group",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := config.Load(configPath)
			if err != nil {
				return err
			}

			cfg := config.Merge(base, flagged, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return err
			}

			cases, err := selectCases(cfg, args)
			if err != nil {
				return err
			}

			report.List(out, cases)

			return nil
		},
	}

	flags := cmd.Flags()
	flagged.Flags(flags)
	flags.StringVar(&configPath, "config", "",
		"Path to a YAML settings file")

	return cmd
}

func newKindsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the leaf types and the value each returns",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return report.ListKinds(out, processor.NumKinds)
		},
	}
}

// selectCases resolves names exactly when any are given, otherwise it
// applies the group and pattern selection.
func selectCases(cfg config.Config, names []string) ([]harness.Case, error) {
	reg, err := harness.DefaultSuite(harness.SuiteConfig{
		Size:     cfg.Size,
		MaxKinds: cfg.MaxKinds,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("build suite: %w", err)
	}

	if len(names) > 0 {
		cases := make([]harness.Case, 0, len(names))

		for _, name := range names {
			c, ok := reg.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown case %q", name)
			}

			cases = append(cases, c)
		}

		return cases, nil
	}

	cases, err := reg.Select(cfg.Groups, cfg.Bench)
	if err != nil {
		return nil, fmt.Errorf("select cases: %w", err)
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases match the selection")
	}

	return cases, nil
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg config.Config,
	names []string,
) error {
	cases, err := selectCases(cfg, names)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int("size", cfg.Size),
		slog.Int("max_kinds", cfg.MaxKinds),
		slog.Int64("seed", cfg.Seed),
		slog.Int("cases", len(cases)),
		slog.Duration("benchtime", cfg.BenchTime),
	)

	if cfg.Profile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cfg.Profile),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()
	}

	runner, err := harness.NewRunner(harness.RunConfig{
		BenchTime: cfg.BenchTime,
	}, logger)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	started := time.Now()

	results, err := runner.RunAll(ctx, cases)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if cfg.JSON {
		run := report.NewRun(started, report.Settings{
			Size:      cfg.Size,
			MaxKinds:  cfg.MaxKinds,
			Seed:      cfg.Seed,
			Groups:    cfg.Groups,
			Bench:     cfg.Bench,
			BenchTime: cfg.BenchTime.String(),
		}, results)

		if err := report.GenerateJSON(out, run); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(out, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}
