package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReturnsValue(t *testing.T) {
	for i := 0; i < NumKinds; i++ {
		p, err := Create(i)
		if err != nil {
			t.Fatalf("Create(%d) failed: %v", i, err)
		}

		if got := p.Process(); got != Values[i] {
			t.Errorf("Create(%d).Process() = %d, want %d", i, got, Values[i])
		}
	}
}

func TestCreateDistinctTypes(t *testing.T) {
	seen := make(map[any]int, NumKinds)

	for i := 0; i < NumKinds; i++ {
		p := MustCreate(i)
		if prev, ok := seen[p]; ok {
			t.Errorf("kind %d has the same dynamic type as kind %d", i, prev)
		}

		seen[p] = i
	}
}

func TestCreateUnknownKind(t *testing.T) {
	for _, i := range []int{-1, NumKinds, 100} {
		p, err := Create(i)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Create(%d) error = %v, want ErrUnknownKind", i, err)
		}
		if p != nil {
			t.Errorf("Create(%d) = %v, want nil", i, p)
		}
	}
}

func TestMustCreatePanics(t *testing.T) {
	assert.Panics(t, func() { MustCreate(NumKinds) })
}

func TestValue(t *testing.T) {
	v, err := Value(9)
	require.NoError(t, err)
	assert.Equal(t, 23, v)

	_, err = Value(-3)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data []Processor
		want int
	}{
		{"nil", nil, 0},
		{"single", []Processor{Processor4{}}, 7},
		{"mixed", []Processor{Processor0{}, Processor1{}, Processor19{}}, 46},
		{"impl", []Processor{&Impl{X: 100}, Processor2{}}, 103},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.data); got != tt.want {
				t.Errorf("Sum = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindMatchesProcessor(t *testing.T) {
	for i := 0; i < NumKinds; i++ {
		assert.Equal(t, MustCreate(i).Process(), Kind(i).Process(), "kind %d", i)
		assert.Equal(t, Values[i], MapDigit(i), "digit %d", i)
	}

	assert.Panics(t, func() { Kind(NumKinds).Process() })
	assert.Panics(t, func() { MapDigit(-1) })
}

func TestDispatchStrategiesAgree(t *testing.T) {
	idx := []int{0, 3, 3, 9, 19, 7, 1}
	kinds := make([]Kind, len(idx))
	objs := make([]Processor, len(idx))

	for n, i := range idx {
		kinds[n] = Kind(i)
		objs[n] = MustCreate(i)
	}

	want := Sum(objs)
	assert.Equal(t, 1+5+5+23+43+17+2, want)
	assert.Equal(t, want, SumKinds(kinds))
	assert.Equal(t, want, SumFuncs(idx, Funcs()))
	assert.Equal(t, want, SumFunc(idx, MapDigit))
	assert.Equal(t, want, SumGeneric(idx, MapDigit))
}

func TestFuncsLength(t *testing.T) {
	funcs := Funcs()
	require.Len(t, funcs, NumKinds)

	for i, f := range funcs {
		assert.Equal(t, Values[i], f(), "func %d", i)
	}
}
