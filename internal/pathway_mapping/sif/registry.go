package sif

import (
	"fmt"
	"sort"
)

var registered = map[string]Rule{}

func Register(r Rule) {
	if r == nil {
		return
	}
	registered[r.Name()] = r
}

func All() []Rule {
	out := make([]Rule, 0, len(registered))
	for _, r := range registered {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Select returns the named rules in name order. No names selects all.
func Select(names ...string) ([]Rule, error) {
	if len(names) == 0 {
		return All(), nil
	}
	seen := map[string]bool{}
	out := make([]Rule, 0, len(names))
	for _, n := range names {
		r, ok := registered[n]
		if !ok {
			return nil, fmt.Errorf("sif: unknown rule %q", n)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}
