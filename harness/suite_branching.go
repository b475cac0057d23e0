package harness

import (
	"cmp"
	"fmt"
)

// midpoint splits the compare workload, drawn from [0, 2*midpoint).
const midpoint = 50_000

var digitTable = [digitRange]int{1, 2, 3, 5, 7, 11, 13, 17, 19, 23}

func sumSwitch(data []int) int {
	result := 0
	for _, v := range data {
		switch v {
		case 0:
			result += 1
		case 1:
			result += 2
		case 2:
			result += 3
		case 3:
			result += 5
		case 4:
			result += 7
		case 5:
			result += 11
		case 6:
			result += 13
		case 7:
			result += 17
		case 8:
			result += 19
		case 9:
			result += 23
		default:
			panic(fmt.Sprintf("bad digit %d", v))
		}
	}

	return result
}

func sumIfChain(data []int) int {
	result := 0
	for _, v := range data {
		if v == 0 {
			result += 1
		} else if v == 1 {
			result += 2
		} else if v == 2 {
			result += 3
		} else if v == 3 {
			result += 5
		} else if v == 4 {
			result += 7
		} else if v == 5 {
			result += 11
		} else if v == 6 {
			result += 13
		} else if v == 7 {
			result += 17
		} else if v == 8 {
			result += 19
		} else if v == 9 {
			result += 23
		} else {
			panic(fmt.Sprintf("bad digit %d", v))
		}
	}

	return result
}

func sumLookupArray(data []int, table *[digitRange]int) int {
	result := 0
	for _, v := range data {
		result += table[v]
	}

	return result
}

func sumLookupMap(data []int, table map[int]int) int {
	result := 0
	for _, v := range data {
		result += table[v]
	}

	return result
}

// sumChecked validates every digit and reports the first bad one instead
// of panicking.
func sumChecked(data []int, table *[digitRange]int) (int, error) {
	result := 0
	for _, v := range data {
		if v < 0 || v >= len(table) {
			return 0, fmt.Errorf("bad digit %d", v)
		}

		result += table[v]
	}

	return result, nil
}

// The three-way bodies fold their counters into one value so both
// variants can be checked against the same expectation.
func foldCounts(less, equal, greater int) int {
	return less + 2*equal + 3*greater
}

func countCompare(data []int) int {
	var less, equal, greater int

	for _, v := range data {
		switch cmp.Compare(v, midpoint) {
		case -1:
			less++
		case 0:
			equal++
		default:
			greater++
		}
	}

	return foldCounts(less, equal, greater)
}

func countIf(data []int) int {
	var less, equal, greater int

	for _, v := range data {
		if v < midpoint {
			less++
		} else if v == midpoint {
			equal++
		} else {
			greater++
		}
	}

	return foldCounts(less, equal, greater)
}

func registerBranchingCases(reg *Registry, cfg SuiteConfig) error {
	compareCase := func(name string, body func([]int) int) Case {
		return Case{
			Name:  name,
			Group: GroupBranching,
			Setup: func() (Prepared, error) {
				data, err := cfg.generator(1, false).Ints(0, 2*midpoint)
				if err != nil {
					return Prepared{}, err
				}

				return Prepared{
					Body:     func() int { return body(data) },
					Want:     countIf(data),
					Elements: len(data),
				}, nil
			},
		}
	}

	return registerAll(reg,
		digitCase(GroupBranching, "branching_switch", cfg,
			func(digits []int) func() int {
				return func() int { return sumSwitch(digits) }
			}),
		digitCase(GroupBranching, "branching_if", cfg,
			func(digits []int) func() int {
				return func() int { return sumIfChain(digits) }
			}),
		digitCase(GroupBranching, "lookup_array", cfg,
			func(digits []int) func() int {
				table := digitTable

				return func() int { return sumLookupArray(digits, &table) }
			}),
		digitCase(GroupBranching, "lookup_map", cfg,
			func(digits []int) func() int {
				table := make(map[int]int, digitRange)
				for i, v := range digitTable {
					table[i] = v
				}

				return func() int { return sumLookupMap(digits, table) }
			}),
		digitCase(GroupBranching, "lookup_checked", cfg,
			func(digits []int) func() int {
				table := digitTable

				return func() int {
					total, err := sumChecked(digits, &table)
					if err != nil {
						return -1
					}

					return total
				}
			}),
		compareCase("branching_cmp", countCompare),
		compareCase("branching_cmp_if", countIf),
	)
}
