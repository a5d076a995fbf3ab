// Package build holds the state shared by the package-related steps of one
// image build.
//
// A [Context] records the target distribution, with its own mutable
// sub-state, and two disjoint sets of package names: persisted packages,
// which stay in the final image, and build-only packages, which exist only
// to support the build and are removed when it finishes.
//
// [Context.Reconcile] turns a batch of requested features into the names
// that still need installing. It consults a [Registry] for each feature,
// stages build-only names, promotes names that a later feature requires at
// runtime, and reports features the distribution cannot provide. It never
// performs I/O; installing the returned batch is up to the distribution
// backend.
//
// A context is exclusively owned by one build and must not be shared across
// concurrent builds. It can be persisted with [Save] and restored with
// [Load] so that separate invocations of the CLI act on the same build.
//
// Example usage:
//
//	bc := build.New(&build.Alpine{Version: "v3.1"})
//	install, unsupported := bc.Reconcile(distro.Alpine, []feature.Feature{
//	    feature.BuildEssential,
//	    feature.Git,
//	})
package build
