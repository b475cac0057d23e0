package harness

import (
	"github.com/weiihann/dispatchbench/workload"
)

// valueBound limits the random values of the element workloads to
// [-valueBound, valueBound).
const valueBound = 100_000

func sumIndex(data []int) int {
	sum := 0
	for i := 0; i < len(data); i++ {
		sum += data[i]
	}

	return sum
}

func sumRange(data []int) int {
	sum := 0
	for _, v := range data {
		sum += v
	}

	return sum
}

func sumArrayIndex(data *[workload.DefaultSize]int) int {
	sum := 0
	for i := 0; i < len(data); i++ {
		sum += data[i]
	}

	return sum
}

func sumArrayRange(data *[workload.DefaultSize]int) int {
	sum := 0
	for _, v := range data {
		sum += v
	}

	return sum
}

func diffIndex(data []int) int {
	result := 0
	for i := 0; i < len(data)-1; i++ {
		result += data[i] - data[i+1]
	}

	return result
}

func diffWindow(data []int) int {
	result := 0
	for w := data; len(w) >= 2; w = w[1:] {
		result += w[0] - w[1]
	}

	return result
}

func dotIndex(left, right []int) int {
	result := 0
	for i := 0; i < len(left); i++ {
		result += left[i] * right[i]
	}

	return result
}

func dotRange(left, right []int) int {
	right = right[:len(left)]

	result := 0
	for i, l := range left {
		result += l * right[i]
	}

	return result
}

// intCase builds a case over random values in [-valueBound, valueBound).
func intCase(
	group, name string,
	cfg SuiteConfig,
	want func([]int) int,
	body func([]int) int,
) Case {
	return Case{
		Name:  name,
		Group: group,
		Setup: func() (Prepared, error) {
			data, err := cfg.generator(1, false).Ints(-valueBound, valueBound)
			if err != nil {
				return Prepared{}, err
			}

			return Prepared{
				Body:     func() int { return body(data) },
				Want:     want(data),
				Elements: len(data),
			}, nil
		},
	}
}

// arrayCase times a fixed-size array, which is always DefaultSize long
// regardless of the configured size.
func arrayCase(name string, cfg SuiteConfig, body func(*[workload.DefaultSize]int) int) Case {
	return Case{
		Name:  name,
		Group: GroupElements,
		Setup: func() (Prepared, error) {
			gen := workload.NewGenerator(workload.Config{
				Size: workload.DefaultSize,
				Seed: cfg.Seed,
			})

			values, err := gen.Ints(-valueBound, valueBound)
			if err != nil {
				return Prepared{}, err
			}

			var data [workload.DefaultSize]int
			copy(data[:], values)

			return Prepared{
				Body:     func() int { return body(&data) },
				Want:     sumRange(data[:]),
				Elements: len(data),
			}, nil
		},
	}
}

func telescope(data []int) int {
	if len(data) < 2 {
		return 0
	}

	return data[0] - data[len(data)-1]
}

func selfDot(data []int) int {
	return dotIndex(data, data)
}

func registerElementCases(reg *Registry, cfg SuiteConfig) error {
	dual := func(f func(l, r []int) int) func([]int) int {
		return func(data []int) int { return f(data, data) }
	}

	return registerAll(reg,
		intCase(GroupElements, "elements_index_slice", cfg, sumRange, sumIndex),
		intCase(GroupElements, "elements_range_slice", cfg, sumRange, sumRange),
		arrayCase("elements_index_array", cfg, sumArrayIndex),
		arrayCase("elements_range_array", cfg, sumArrayRange),
		intCase(GroupPair, "pair_index", cfg, telescope, diffIndex),
		intCase(GroupPair, "pair_window", cfg, telescope, diffWindow),
		intCase(GroupDual, "dual_index", cfg, selfDot, dual(dotIndex)),
		intCase(GroupDual, "dual_range", cfg, selfDot, dual(dotRange)),
	)
}
