// Package processor defines the leaf types whose Process calls are timed.
// Each leaf is an empty struct returning a fixed constant, so the only work
// left in a call is the interface dispatch itself.
package processor

import (
	"errors"
	"fmt"
)

// NumKinds is the number of distinct leaf types.
const NumKinds = 20

// ErrUnknownKind is returned when a kind index has no leaf type.
var ErrUnknownKind = errors.New("unknown processor kind")

// Values holds the constant returned by each leaf type, indexed by kind.
var Values = [NumKinds]int{
	1, 2, 3, 5, 7, 11, 13, 17, 19, 23,
	25, 27, 29, 31, 33, 35, 37, 39, 41, 43,
}

// Processor is implemented by every leaf type.
type Processor interface {
	Process() int
}

type Processor0 struct{}

func (Processor0) Process() int { return 1 }

type Processor1 struct{}

func (Processor1) Process() int { return 2 }

type Processor2 struct{}

func (Processor2) Process() int { return 3 }

type Processor3 struct{}

func (Processor3) Process() int { return 5 }

type Processor4 struct{}

func (Processor4) Process() int { return 7 }

type Processor5 struct{}

func (Processor5) Process() int { return 11 }

type Processor6 struct{}

func (Processor6) Process() int { return 13 }

type Processor7 struct{}

func (Processor7) Process() int { return 17 }

type Processor8 struct{}

func (Processor8) Process() int { return 19 }

type Processor9 struct{}

func (Processor9) Process() int { return 23 }

type Processor10 struct{}

func (Processor10) Process() int { return 25 }

type Processor11 struct{}

func (Processor11) Process() int { return 27 }

type Processor12 struct{}

func (Processor12) Process() int { return 29 }

type Processor13 struct{}

func (Processor13) Process() int { return 31 }

type Processor14 struct{}

func (Processor14) Process() int { return 33 }

type Processor15 struct{}

func (Processor15) Process() int { return 35 }

type Processor16 struct{}

func (Processor16) Process() int { return 37 }

type Processor17 struct{}

func (Processor17) Process() int { return 39 }

type Processor18 struct{}

func (Processor18) Process() int { return 41 }

type Processor19 struct{}

func (Processor19) Process() int { return 43 }

// Impl is a single concrete type carrying its value in a field. A slice of
// Impl values behind the interface has one dynamic type no matter how many
// distinct values it holds.
type Impl struct {
	X int
}

// Process returns the stored value.
func (p *Impl) Process() int { return p.X }

// Create returns a new instance of the leaf type for kind i.
func Create(i int) (Processor, error) {
	switch i {
	case 0:
		return Processor0{}, nil
	case 1:
		return Processor1{}, nil
	case 2:
		return Processor2{}, nil
	case 3:
		return Processor3{}, nil
	case 4:
		return Processor4{}, nil
	case 5:
		return Processor5{}, nil
	case 6:
		return Processor6{}, nil
	case 7:
		return Processor7{}, nil
	case 8:
		return Processor8{}, nil
	case 9:
		return Processor9{}, nil
	case 10:
		return Processor10{}, nil
	case 11:
		return Processor11{}, nil
	case 12:
		return Processor12{}, nil
	case 13:
		return Processor13{}, nil
	case 14:
		return Processor14{}, nil
	case 15:
		return Processor15{}, nil
	case 16:
		return Processor16{}, nil
	case 17:
		return Processor17{}, nil
	case 18:
		return Processor18{}, nil
	case 19:
		return Processor19{}, nil
	default:
		return nil, fmt.Errorf("create kind %d: %w", i, ErrUnknownKind)
	}
}

// MustCreate is like Create but panics on an unknown kind.
func MustCreate(i int) Processor {
	p, err := Create(i)
	if err != nil {
		panic(err)
	}

	return p
}

// Value returns the constant produced by kind i.
func Value(i int) (int, error) {
	if i < 0 || i >= NumKinds {
		return 0, fmt.Errorf("value of kind %d: %w", i, ErrUnknownKind)
	}

	return Values[i], nil
}

// Sum calls Process on every element and adds up the results.
func Sum(data []Processor) int {
	result := 0
	for _, p := range data {
		result += p.Process()
	}

	return result
}
