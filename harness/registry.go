package harness

import (
	"fmt"
	"regexp"
)

// Prepared is the output of a case's setup: the timed body, the value it
// must return, and how many elements one call walks over.
type Prepared struct {
	Body     func() int
	Want     int
	Elements int
}

// Case is a named benchmark. Setup runs once, outside the timed region.
type Case struct {
	Name  string
	Group string
	Setup func() (Prepared, error)
}

// Registry is an ordered set of uniquely named cases.
type Registry struct {
	cases []Case
	index map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends c. Names must be unique.
func (r *Registry) Register(c Case) error {
	if c.Name == "" {
		return fmt.Errorf("case has no name")
	}

	if c.Setup == nil {
		return fmt.Errorf("case %s has no setup", c.Name)
	}

	if _, ok := r.index[c.Name]; ok {
		return fmt.Errorf("duplicate case %q", c.Name)
	}

	r.index[c.Name] = len(r.cases)
	r.cases = append(r.cases, c)

	return nil
}

// Lookup returns the case with the given name.
func (r *Registry) Lookup(name string) (Case, bool) {
	i, ok := r.index[name]
	if !ok {
		return Case{}, false
	}

	return r.cases[i], true
}

// Cases returns all cases in registration order.
func (r *Registry) Cases() []Case {
	out := make([]Case, len(r.cases))
	copy(out, r.cases)

	return out
}

// Groups returns the distinct group names in registration order.
func (r *Registry) Groups() []string {
	seen := make(map[string]bool)

	var groups []string

	for _, c := range r.cases {
		if !seen[c.Group] {
			seen[c.Group] = true
			groups = append(groups, c.Group)
		}
	}

	return groups
}

// Select returns the cases that belong to one of groups (all groups when
// empty) and whose name matches pattern (everything when empty).
func (r *Registry) Select(groups []string, pattern string) ([]Case, error) {
	var re *regexp.Regexp

	if pattern != "" {
		var err error

		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile filter %q: %w", pattern, err)
		}
	}

	want := make(map[string]bool, len(groups))
	for _, g := range groups {
		want[g] = true
	}

	for g := range want {
		if !r.hasGroup(g) {
			return nil, fmt.Errorf("unknown group %q", g)
		}
	}

	var out []Case

	for _, c := range r.cases {
		if len(want) > 0 && !want[c.Group] {
			continue
		}

		if re != nil && !re.MatchString(c.Name) {
			continue
		}

		out = append(out, c)
	}

	return out, nil
}

func (r *Registry) hasGroup(group string) bool {
	for _, c := range r.cases {
		if c.Group == group {
			return true
		}
	}

	return false
}
