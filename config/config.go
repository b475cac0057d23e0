// Package config loads run settings from an optional YAML file and merges
// them with command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/weiihann/dispatchbench/processor"
	"github.com/weiihann/dispatchbench/workload"
)

// Config is the full set of run settings.
type Config struct {
	Size      int           `yaml:"size"`
	MaxKinds  int           `yaml:"max_kinds"`
	Seed      int64         `yaml:"seed"`
	Groups    []string      `yaml:"groups"`
	Bench     string        `yaml:"bench"`
	BenchTime time.Duration `yaml:"benchtime"`
	JSON      bool          `yaml:"json"`
	Profile   string        `yaml:"cpuprofile"`
}

// Default returns the settings used when neither a file nor flags say
// otherwise.
func Default() Config {
	return Config{
		Size:      workload.DefaultSize,
		MaxKinds:  5,
		BenchTime: time.Second,
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Flags binds the settings to fs. Values registered here start at the
// defaults; use Merge to apply only the flags the user set.
func (c *Config) Flags(fs *pflag.FlagSet) {
	d := Default()

	fs.IntVar(&c.Size, "size", d.Size,
		"Number of elements per collection")
	fs.IntVar(&c.MaxKinds, "kinds", d.MaxKinds,
		"Highest number of leaf types in the class and shuffle groups")
	fs.Int64Var(&c.Seed, "seed", d.Seed,
		"Random seed for shuffles and random workloads")
	fs.StringSliceVar(&c.Groups, "groups", nil,
		"Case groups to run (default: all)")
	fs.StringVar(&c.Bench, "bench", "",
		"Regular expression selecting cases by name")
	fs.DurationVar(&c.BenchTime, "benchtime", d.BenchTime,
		"Minimum timed duration per case")
	fs.BoolVar(&c.JSON, "json", false,
		"Output results as JSON instead of tables")
	fs.StringVar(&c.Profile, "cpuprofile", "",
		"Write a CPU profile into this directory")
}

// Merge copies into base every flag in fs that was set explicitly,
// taking the value from flagged.
func Merge(base, flagged Config, fs *pflag.FlagSet) Config {
	out := base

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "size":
			out.Size = flagged.Size
		case "kinds":
			out.MaxKinds = flagged.MaxKinds
		case "seed":
			out.Seed = flagged.Seed
		case "groups":
			out.Groups = flagged.Groups
		case "bench":
			out.Bench = flagged.Bench
		case "benchtime":
			out.BenchTime = flagged.BenchTime
		case "json":
			out.JSON = flagged.JSON
		case "cpuprofile":
			out.Profile = flagged.Profile
		}
	})

	return out
}

// Validate reports settings the suite cannot run with.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}

	if c.MaxKinds < 1 || c.MaxKinds > processor.NumKinds {
		return fmt.Errorf(
			"kinds must be between 1 and %d, got %d",
			processor.NumKinds, c.MaxKinds,
		)
	}

	if c.BenchTime < 0 {
		return fmt.Errorf("benchtime must not be negative, got %s", c.BenchTime)
	}

	return nil
}
