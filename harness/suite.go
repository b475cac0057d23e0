package harness

import (
	"errors"
	"fmt"

	"github.com/weiihann/dispatchbench/processor"
	"github.com/weiihann/dispatchbench/workload"
)

// Group names of the default suite.
const (
	GroupClass     = "class"
	GroupShuffle   = "shuffle"
	GroupDispatch  = "dispatch"
	GroupBranching = "branching"
	GroupElements  = "elements"
	GroupPair      = "pair"
	GroupDual      = "dual"
	GroupOption    = "option"
	GroupTail      = "tail"
)

// digitRange is the number of distinct values in the digit workloads.
const digitRange = 10

// SuiteConfig sizes the default suite.
type SuiteConfig struct {
	Size     int
	MaxKinds int
	Seed     int64
}

// DefaultSuiteConfig matches the classic setup: 10000 elements and up to
// five leaf types.
func DefaultSuiteConfig() SuiteConfig {
	return SuiteConfig{
		Size:     workload.DefaultSize,
		MaxKinds: 5,
	}
}

// DefaultSuite registers every case group.
func DefaultSuite(cfg SuiteConfig) (*Registry, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", cfg.Size)
	}

	if cfg.MaxKinds < 1 || cfg.MaxKinds > processor.NumKinds {
		return nil, fmt.Errorf(
			"max kinds %d out of range [1, %d]",
			cfg.MaxKinds, processor.NumKinds,
		)
	}

	reg := NewRegistry()

	err := errors.Join(
		registerClassCases(reg, cfg),
		registerDispatchCases(reg, cfg),
		registerBranchingCases(reg, cfg),
		registerElementCases(reg, cfg),
		registerOptionCases(reg, cfg),
		registerTailCases(reg, cfg),
	)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func (cfg SuiteConfig) generator(kinds int, shuffle bool) *workload.Generator {
	return workload.NewGenerator(workload.Config{
		Size:    cfg.Size,
		Kinds:   kinds,
		Shuffle: shuffle,
		Seed:    cfg.Seed,
	})
}

func registerClassCases(reg *Registry, cfg SuiteConfig) error {
	var errs []error

	for kinds := 1; kinds <= cfg.MaxKinds; kinds++ {
		errs = append(errs, reg.Register(collectionCase(
			GroupClass, fmt.Sprintf("class_%d", kinds), cfg, kinds, false,
		)))
	}

	for kinds := 2; kinds <= cfg.MaxKinds; kinds++ {
		errs = append(errs, reg.Register(collectionCase(
			GroupShuffle, fmt.Sprintf("shuffle_%d", kinds), cfg, kinds, true,
		)))
	}

	return errors.Join(errs...)
}

func collectionCase(
	group, name string,
	cfg SuiteConfig,
	kinds int,
	shuffle bool,
) Case {
	return Case{
		Name:  name,
		Group: group,
		Setup: func() (Prepared, error) {
			data, _, err := cfg.generator(kinds, shuffle).Processors()
			if err != nil {
				return Prepared{}, err
			}

			return Prepared{
				Body:     func() int { return processor.Sum(data) },
				Want:     workload.ExpectedSum(cfg.Size, kinds),
				Elements: len(data),
			}, nil
		},
	}
}

// registerAll registers cases in order, stopping at the first failure.
func registerAll(reg *Registry, cases ...Case) error {
	for _, c := range cases {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
