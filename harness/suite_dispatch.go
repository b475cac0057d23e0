package harness

import (
	"fmt"

	"github.com/weiihann/dispatchbench/processor"
)

// digitCase builds a case over a random digit workload. build receives the
// digits and returns the timed body.
func digitCase(
	group, name string,
	cfg SuiteConfig,
	build func(digits []int) func() int,
) Case {
	return Case{
		Name:  name,
		Group: group,
		Setup: func() (Prepared, error) {
			digits, err := cfg.generator(1, false).Digits(digitRange)
			if err != nil {
				return Prepared{}, err
			}

			return Prepared{
				Body:     build(digits),
				Want:     digitSum(digits),
				Elements: len(digits),
			}, nil
		},
	}
}

func digitSum(digits []int) int {
	total := 0
	for _, d := range digits {
		total += processor.Values[d]
	}

	return total
}

func registerDispatchCases(reg *Registry, cfg SuiteConfig) error {
	cases := []Case{
		digitCase(GroupDispatch, "dispatch_lambdas", cfg,
			func(digits []int) func() int {
				funcs := processor.Funcs()

				return func() int { return processor.SumFuncs(digits, funcs) }
			}),
		digitCase(GroupDispatch, "dispatch_func", cfg,
			func(digits []int) func() int {
				return func() int {
					return processor.SumFunc(digits, processor.MapDigit)
				}
			}),
		digitCase(GroupDispatch, "dispatch_closure", cfg,
			func(digits []int) func() int {
				f := func(i int) int { return processor.MapDigit(i) }

				return func() int { return processor.SumFunc(digits, f) }
			}),
		digitCase(GroupDispatch, "dispatch_generic", cfg,
			func(digits []int) func() int {
				return func() int {
					return processor.SumGeneric(digits, processor.MapDigit)
				}
			}),
		digitCase(GroupDispatch, "dispatch_objs", cfg,
			func(digits []int) func() int {
				objs := make([]processor.Processor, len(digits))
				for i, d := range digits {
					objs[i] = &processor.Impl{X: processor.Values[d]}
				}

				return func() int { return processor.Sum(objs) }
			}),
		digitCase(GroupDispatch, "dispatch_varied_objs", cfg,
			func(digits []int) func() int {
				objs := make([]processor.Processor, len(digits))
				for i, d := range digits {
					objs[i] = processor.MustCreate(d)
				}

				return func() int { return processor.Sum(objs) }
			}),
		digitCase(GroupDispatch, "dispatch_enums", cfg,
			func(digits []int) func() int {
				kinds := make([]processor.Kind, len(digits))
				for i, d := range digits {
					kinds[i] = processor.Kind(d)
				}

				return func() int { return processor.SumKinds(kinds) }
			}),
	}

	// varied_N mixes N dynamic types: digits below N-1 get their own leaf
	// type and the rest share Impl.
	for n := 1; n <= digitRange; n++ {
		limit := n - 1
		cases = append(cases, digitCase(
			GroupDispatch, fmt.Sprintf("dispatch_varied_%d", n), cfg,
			func(digits []int) func() int {
				objs := make([]processor.Processor, len(digits))
				for i, d := range digits {
					if d < limit {
						objs[i] = processor.MustCreate(d)
					} else {
						objs[i] = &processor.Impl{X: processor.Values[d]}
					}
				}

				return func() int { return processor.Sum(objs) }
			}))
	}

	return registerAll(reg, cases...)
}
