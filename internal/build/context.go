package build

import (
	"log/slog"

	"github.com/cruciblehq/cruxpkg/internal/feature"
)

// Maps features to package names for one distribution.
//
// A false result means the distribution has no mapping for that side of the
// feature. A true result with no names means nothing extra is needed.
type Registry interface {
	BuildDeps(f feature.Feature) ([]string, bool)
	SystemDeps(f feature.Feature) ([]string, bool)
}

// Mutable state for the package steps of a single image build.
//
// Persisted and BuildOnly are disjoint at all times.
type Context struct {
	Distribution Distribution // Target distribution and its sub-state.
	Persisted    *Set         // Packages kept in the final image.
	BuildOnly    *Set         // Packages removed when the build finishes.
}

// Creates an empty context for the given distribution.
func New(dist Distribution) *Context {
	return &Context{
		Distribution: dist,
		Persisted:    NewSet(),
		BuildOnly:    NewSet(),
	}
}

// Computes the package names to install for a batch of features.
//
// Features are processed in order. For each one, build-only names that are
// neither persisted nor already staged are added to the build-only set.
// System names are then removed from the build-only set, which promotes a
// name staged earlier, and added to the persisted set. Every name that
// enters either set is appended to the install batch, once.
//
// A feature whose build side is unsupported contributes nothing. A feature
// whose system side is unsupported still contributes its build-only names.
// Both cases are reported in the unsupported list, which may contain a
// feature more than once if it was requested more than once.
//
// The context is updated in place. Installing the batch is the caller's job.
func (c *Context) Reconcile(reg Registry, features []feature.Feature) (install []string, unsupported []feature.Feature) {
	staged := make(map[string]bool)
	stage := func(name string) {
		if !staged[name] {
			staged[name] = true
			install = append(install, name)
		}
	}

	for _, f := range features {
		build, ok := reg.BuildDeps(f)
		if !ok {
			slog.Debug("feature unsupported", "feature", f, "side", "build")
			unsupported = append(unsupported, f)
			continue
		}
		for _, name := range build {
			if c.Persisted.Contains(name) {
				continue
			}
			if c.BuildOnly.Insert(name) {
				stage(name)
			}
		}

		system, ok := reg.SystemDeps(f)
		if !ok {
			slog.Debug("feature unsupported", "feature", f, "side", "system")
			unsupported = append(unsupported, f)
			continue
		}
		for _, name := range system {
			if c.BuildOnly.Remove(name) {
				slog.Debug("promoting package", "package", name, "feature", f)
			}
			if c.Persisted.Insert(name) {
				stage(name)
			}
		}
	}

	return install, unsupported
}
