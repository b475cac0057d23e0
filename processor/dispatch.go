package processor

import "fmt"

// Kind is the closed-set alternative to the Processor interface: one
// integer tag per leaf type, dispatched with a switch.
type Kind uint8

// Process returns the constant for the tag.
func (k Kind) Process() int {
	switch k {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 7
	case 5:
		return 11
	case 6:
		return 13
	case 7:
		return 17
	case 8:
		return 19
	case 9:
		return 23
	case 10:
		return 25
	case 11:
		return 27
	case 12:
		return 29
	case 13:
		return 31
	case 14:
		return 33
	case 15:
		return 35
	case 16:
		return 37
	case 17:
		return 39
	case 18:
		return 41
	case 19:
		return 43
	default:
		panic(fmt.Sprintf("bad kind %d", k))
	}
}

// MapDigit maps a kind index to its constant with a switch. It panics on an
// index outside [0, NumKinds).
func MapDigit(v int) int {
	return Kind(checkIndex(v)).Process()
}

func checkIndex(v int) int {
	if v < 0 || v >= NumKinds {
		panic(fmt.Sprintf("bad digit %d", v))
	}

	return v
}

// Funcs returns one niladic function per kind, each returning that kind's
// constant.
func Funcs() []func() int {
	return []func() int{
		func() int { return 1 },
		func() int { return 2 },
		func() int { return 3 },
		func() int { return 5 },
		func() int { return 7 },
		func() int { return 11 },
		func() int { return 13 },
		func() int { return 17 },
		func() int { return 19 },
		func() int { return 23 },
		func() int { return 25 },
		func() int { return 27 },
		func() int { return 29 },
		func() int { return 31 },
		func() int { return 33 },
		func() int { return 35 },
		func() int { return 37 },
		func() int { return 39 },
		func() int { return 41 },
		func() int { return 43 },
	}
}

// SumKinds dispatches through the Kind switch.
func SumKinds(data []Kind) int {
	result := 0
	for _, k := range data {
		result += k.Process()
	}

	return result
}

// SumFuncs calls funcs[i] for every index.
func SumFuncs(idx []int, funcs []func() int) int {
	result := 0
	for _, i := range idx {
		result += funcs[i]()
	}

	return result
}

// SumFunc passes every index through f.
func SumFunc(idx []int, f func(int) int) int {
	result := 0
	for _, i := range idx {
		result += f(i)
	}

	return result
}

// SumGeneric is SumFunc with the mapping as a type parameter, letting the
// compiler specialise the call site per function type.
func SumGeneric[F ~func(int) int](idx []int, f F) int {
	result := 0
	for _, i := range idx {
		result += f(i)
	}

	return result
}
