// Package workload builds the deterministic data sets timed by the
// benchmark cases: collections of processors of varying type diversity,
// optionally shuffled, and random integer and string arrays.
package workload

import (
	"fmt"
	mrand "math/rand"

	"github.com/weiihann/dispatchbench/processor"
)

// DefaultSize is the number of elements in every generated collection.
const DefaultSize = 10_000

// Config controls workload generation parameters.
type Config struct {
	Size    int
	Kinds   int
	Shuffle bool
	Seed    int64
}

// Summary contains statistics about a generated processor collection.
type Summary struct {
	Size     int
	Kinds    int
	Shuffled bool
	PerKind  []int
	Total    int
}

// Generator produces deterministic workloads from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config. A zero Size
// falls back to DefaultSize.
func NewGenerator(cfg Config) *Generator {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Processors builds Size instances where element i is of kind i % Kinds,
// shuffling them afterwards if requested.
func (g *Generator) Processors() ([]processor.Processor, Summary, error) {
	kinds := g.cfg.Kinds
	if kinds < 1 || kinds > processor.NumKinds {
		return nil, Summary{}, fmt.Errorf(
			"kinds %d out of range [1, %d]", kinds, processor.NumKinds,
		)
	}

	summary := Summary{
		Size:     g.cfg.Size,
		Kinds:    kinds,
		Shuffled: g.cfg.Shuffle,
		PerKind:  make([]int, kinds),
	}

	data := make([]processor.Processor, g.cfg.Size)
	for i := range data {
		k := i % kinds

		p, err := processor.Create(k)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("element %d: %w", i, err)
		}

		data[i] = p
		summary.PerKind[k]++
		summary.Total += processor.Values[k]
	}

	if g.cfg.Shuffle {
		g.rng.Shuffle(len(data), func(i, j int) {
			data[i], data[j] = data[j], data[i]
		})
	}

	return data, summary, nil
}

// Digits returns Size random integers in [0, n).
func (g *Generator) Digits(n int) ([]int, error) {
	return g.Ints(0, n)
}

// Ints returns Size random integers in [lo, hi). An empty range is an
// error.
func (g *Generator) Ints(lo, hi int) ([]int, error) {
	if hi <= lo {
		return nil, fmt.Errorf("empty range [%d, %d)", lo, hi)
	}

	out := make([]int, g.cfg.Size)
	span := hi - lo

	for i := range out {
		out[i] = lo + g.rng.Intn(span)
	}

	return out, nil
}

// Strings returns Size optional strings. Roughly half are nil; the rest
// are blank strings of length 0 to 19.
func (g *Generator) Strings() []*string {
	out := make([]*string, g.cfg.Size)

	for i := range out {
		if g.rng.Intn(2) == 0 {
			continue
		}

		s := fmt.Sprintf("%*s", g.rng.Intn(20), "")
		out[i] = &s
	}

	return out
}

// ExpectedSum returns the total of a size-element collection cycling
// through the first kinds leaf types. Ordering does not affect it.
func ExpectedSum(size, kinds int) int {
	if kinds < 1 || kinds > processor.NumKinds || size <= 0 {
		return 0
	}

	cycle := 0
	for k := 0; k < kinds; k++ {
		cycle += processor.Values[k]
	}

	total := (size / kinds) * cycle
	for k := 0; k < size%kinds; k++ {
		total += processor.Values[k]
	}

	return total
}
