// Package harness registers and times the dispatch benchmark cases.
package harness

// Result holds the measurements of a single case.
type Result struct {
	Name         string  `json:"name"`
	Group        string  `json:"group"`
	Elements     int     `json:"elements"`
	Sum          int     `json:"sum"`
	Iterations   int     `json:"iterations"`
	NsPerOp      float64 `json:"ns_per_op"`
	NsPerElement float64 `json:"ns_per_element"`
	AllocsPerOp  int64   `json:"allocs_per_op"`
	BytesPerOp   int64   `json:"bytes_per_op"`
}
