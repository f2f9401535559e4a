package soar

import (
	"sort"
	"strings"
)

// ScopeSet is the read-only set of predefined scope names accepted by the
// backend. It is built once (from config or a startup fetch) and passed to
// the Invoker explicitly.
type ScopeSet struct {
	names map[string]struct{}
}

// NewScopeSet builds a set from scope names, ignoring blanks and duplicates
func NewScopeSet(names ...string) ScopeSet {
	set := ScopeSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set.names[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a valid scope. Matching is exact.
func (s ScopeSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of scopes in the set
func (s ScopeSet) Len() int {
	return len(s.names)
}

// Sorted returns the scope names in alphabetical order
func (s ScopeSet) Sorted() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
