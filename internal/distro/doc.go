// Maps abstract features to distribution package names.
//
// Each supported distribution has a declarative [Table] with one [Rule] per
// feature. A rule has two sides: build-only packages, which are installed
// to perform the build and removed before the image is finalized, and
// system packages, which persist in the final image. Either side may be
// unsupported, which is distinct from a side that requires no packages.
//
// Tables are validated by [Table.Validate]; every feature must have an
// explicit rule, so adding a feature without updating every table fails
// the registry tests rather than surfacing as a runtime gap.
//
// Example usage:
//
//	t, ok := distro.Lookup("alpine")
//	if !ok {
//	    return errUnknownDistribution
//	}
//	names, supported := t.BuildDeps(feature.Git)
package distro
