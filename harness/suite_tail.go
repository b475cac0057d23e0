package harness

import "github.com/weiihann/dispatchbench/workload"

// Go does not eliminate tail calls, so every recursive form below grows
// the stack by one frame per element. Stack overflow is fatal rather than a
// recoverable panic, so the tail group always uses DefaultSize elements
// regardless of the configured size.

func sumRecursive(data []int) int {
	if len(data) == 0 {
		return 0
	}

	return data[0] + sumRecursive(data[1:])
}

func sumAccum(data []int, acc int) int {
	if len(data) == 0 {
		return acc
	}

	return sumAccum(data[1:], acc+data[0])
}

func sumIndexAccum(data []int, i, acc int) int {
	if i >= len(data) {
		return acc
	}

	return sumIndexAccum(data, i+1, acc+data[i])
}

func registerTailCases(reg *Registry, cfg SuiteConfig) error {
	pinned := cfg
	pinned.Size = workload.DefaultSize

	return registerAll(reg,
		intCase(GroupTail, "tail_recursive", pinned, sumRange, sumRecursive),
		intCase(GroupTail, "tail_accum", pinned, sumRange,
			func(data []int) int { return sumAccum(data, 0) }),
		intCase(GroupTail, "tail_index_accum", pinned, sumRange,
			func(data []int) int { return sumIndexAccum(data, 0, 0) }),
		intCase(GroupTail, "tail_loop", pinned, sumRange, sumRange),
	)
}
