// Package alpine installs and removes packages in an Alpine Linux root
// filesystem during an image build.
//
// A [Backend] drives the apk installer against the target root. It
// bootstraps the base system once per build ([Backend.SetupBase]),
// resolves feature requests into a single batched install
// ([Backend.EnsurePackages]), exposes raw add and del primitives
// ([Backend.Install], [Backend.Remove]), and finalizes the image by
// removing build-only packages and writing the installed-package manifest
// ([Backend.Finish]).
//
// Every operation takes the build's [build.Context] and rejects contexts
// whose distribution is not Alpine. Operations are synchronous and are
// expected to be called one at a time by the build pipeline; a failed
// operation leaves the target root as it was at the point of failure and
// the pipeline should discard it.
//
// Example usage:
//
//	b := alpine.New(alpine.DefaultConfig(), runtime.NewHost(), checker)
//	if err := b.SetupBase(ctx, bc, alpine.LatestVersion); err != nil {
//	    return err
//	}
//	unsupported, err := b.EnsurePackages(ctx, bc, []feature.Feature{feature.BuildEssential})
//	if err != nil {
//	    return err
//	}
//	manifest, err := b.Finish(ctx, bc)
package alpine
