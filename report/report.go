// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/weiihann/dispatchbench/harness"
	"github.com/weiihann/dispatchbench/processor"
)

// Settings records how a run was configured.
type Settings struct {
	Size      int      `json:"size"`
	MaxKinds  int      `json:"max_kinds"`
	Seed      int64    `json:"seed"`
	Groups    []string `json:"groups,omitempty"`
	Bench     string   `json:"bench,omitempty"`
	BenchTime string   `json:"benchtime"`
}

// Run is the JSON document written for a complete run.
type Run struct {
	ID       string           `json:"id"`
	Started  time.Time        `json:"started"`
	Settings Settings         `json:"settings"`
	Results  []harness.Result `json:"results"`
}

// NewRun stamps results with a fresh run ID.
func NewRun(started time.Time, settings Settings, results []harness.Result) Run {
	return Run{
		ID:       uuid.NewString(),
		Started:  started.UTC(),
		Settings: settings,
		Results:  results,
	}
}

// Generate writes one markdown table per group. Each row is compared
// against the fastest case of its group.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")

	for _, group := range groupOrder(results) {
		rows := filterGroup(results, group)
		fastest := findFastest(rows)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %s\n", group)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "| Case | Iterations | Time/op | Per element "+
			"| Allocs/op | Bytes/op | Sum | Relative |")
		fmt.Fprintln(w, "|------|------------|---------|-------------"+
			"|-----------|----------|-----|----------|")

		for _, r := range rows {
			relative := 1.0
			if fastest > 0 && r.NsPerOp > 0 {
				relative = r.NsPerOp / fastest
			}

			fmt.Fprintf(w, "| %s | %d | %s | %s | %d | %s | %d | %.2fx |\n",
				r.Name,
				r.Iterations,
				formatNs(r.NsPerOp),
				formatNs(r.NsPerElement),
				r.AllocsPerOp,
				formatBytes(r.BytesPerOp),
				r.Sum,
				relative,
			)
		}
	}

	return nil
}

// GenerateJSON writes run as JSON to w.
func GenerateJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(run)
}

// List writes case names grouped under headings.
func List(w io.Writer, cases []harness.Case) {
	var current string

	for i, c := range cases {
		if i == 0 || c.Group != current {
			current = c.Group
			fmt.Fprintf(w, "%s:\n", current)
		}

		fmt.Fprintf(w, "  %s\n", c.Name)
	}
}

// ListKinds writes the first n leaf types and the constant each returns.
func ListKinds(w io.Writer, n int) error {
	fmt.Fprintln(w, "| Kind | Type | Value |")
	fmt.Fprintln(w, "|------|------|-------|")

	for i := 0; i < n; i++ {
		v, err := processor.Value(i)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "| %d | Processor%d | %d |\n", i, i, v)
	}

	return nil
}

func groupOrder(results []harness.Result) []string {
	seen := make(map[string]bool)

	var groups []string

	for _, r := range results {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}

	return groups
}

func filterGroup(results []harness.Result, group string) []harness.Result {
	var out []harness.Result

	for _, r := range results {
		if r.Group == group {
			out = append(out, r)
		}
	}

	return out
}

func findFastest(results []harness.Result) float64 {
	fastest := math.Inf(1)
	for _, r := range results {
		if r.NsPerOp > 0 && r.NsPerOp < fastest {
			fastest = r.NsPerOp
		}
	}

	if math.IsInf(fastest, 1) {
		return 0
	}

	return fastest
}

func formatNs(ns float64) string {
	switch {
	case ns <= 0:
		return "-"
	case ns < 1e3:
		return fmt.Sprintf("%.2fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.2fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.2fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}

func formatBytes(b int64) string {
	if b <= 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
