package distro

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cruciblehq/cruxpkg/internal/feature"
)

// Package names for one side of a rule.
//
// The zero value is unsupported. A supported mapping with no names means the
// feature is already satisfied by the base image.
type Mapping struct {
	Names     []string // Package names, in install order.
	Supported bool     // Whether the distribution can provide this side at all.
}

// Returns a supported mapping with the given names.
func pkgs(names ...string) Mapping {
	return Mapping{Names: names, Supported: true}
}

// Mapping for a side the distribution cannot provide.
var unsupported = Mapping{}

// Build-only and system packages for a single feature.
type Rule struct {
	Build  Mapping
	System Mapping
}

// Feature lookup table for a distribution.
type Table struct {
	Name  string                   // Distribution name (e.g., "alpine").
	Rules map[feature.Feature]Rule // One rule per feature.
}

// Returns the build-only package names for a feature.
//
// The boolean is false when the distribution has no mapping. The returned
// slice is a copy and may be modified by the caller.
func (t *Table) BuildDeps(f feature.Feature) ([]string, bool) {
	return lookup(t.Rules[f].Build)
}

// Returns the persisted package names for a feature.
//
// The boolean is false when the distribution has no mapping. The returned
// slice is a copy and may be modified by the caller.
func (t *Table) SystemDeps(f feature.Feature) ([]string, bool) {
	return lookup(t.Rules[f].System)
}

// Reports whether both sides of a feature are supported.
func (t *Table) Supports(f feature.Feature) bool {
	r := t.Rules[f]
	return r.Build.Supported && r.System.Supported
}

// Checks that every feature has an explicit rule and that no unsupported
// side carries names.
func (t *Table) Validate() error {
	var missing []string
	for _, f := range feature.All() {
		r, ok := t.Rules[f]
		if !ok {
			missing = append(missing, f.String())
			continue
		}
		if !r.Build.Supported && len(r.Build.Names) > 0 {
			return fmt.Errorf("%w: %s: %s has build names but is unsupported", ErrIncompleteTable, t.Name, f)
		}
		if !r.System.Supported && len(r.System.Names) > 0 {
			return fmt.Errorf("%w: %s: %s has system names but is unsupported", ErrIncompleteTable, t.Name, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s: no rule for %v", ErrIncompleteTable, t.Name, missing)
	}
	return nil
}

func lookup(m Mapping) ([]string, bool) {
	if !m.Supported {
		return nil, false
	}
	return slices.Clone(m.Names), true
}
