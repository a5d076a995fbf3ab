package build

import "sort"

// An unordered set of package names.
type Set struct {
	m map[string]struct{}
}

// Creates a set holding the given names.
func NewSet(names ...string) *Set {
	s := &Set{m: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.m[n] = struct{}{}
	}
	return s
}

// Adds a name and reports whether it was not already present.
func (s *Set) Insert(name string) bool {
	if _, ok := s.m[name]; ok {
		return false
	}
	s.m[name] = struct{}{}
	return true
}

// Removes a name and reports whether it was present.
func (s *Set) Remove(name string) bool {
	if _, ok := s.m[name]; !ok {
		return false
	}
	delete(s.m, name)
	return true
}

// Reports whether the name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.m[name]
	return ok
}

// Returns the number of names.
func (s *Set) Len() int {
	return len(s.m)
}

// Removes every name.
func (s *Set) Clear() {
	clear(s.m)
}

// Returns the names in lexical order.
func (s *Set) Sorted() []string {
	names := make([]string, 0, len(s.m))
	for n := range s.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
