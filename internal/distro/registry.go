package distro

import "sort"

// Registered tables, keyed by distribution name.
var tables = map[string]*Table{
	Alpine.Name: Alpine,
}

// Returns the table registered for a distribution name.
func Lookup(name string) (*Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// Returns the names of all registered distributions, sorted.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
