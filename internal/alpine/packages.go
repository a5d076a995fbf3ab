package alpine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/feature"
)

// Adds packages to the root in a single apk invocation.
//
// Names are passed through as given, duplicates included. An empty list
// does not start apk at all, since "apk add" without names would only
// rewrite the world file.
func (b *Backend) Install(ctx context.Context, bc *build.Context, names []string) error {
	if _, err := alpineOf(bc); err != nil {
		return err
	}
	return b.add(ctx, names)
}

// Deletes packages from the root in a single apk invocation.
//
// Names are passed through as given. An empty list does not start apk at
// all, which also lets [Backend.Finish] skip the removal when nothing is
// build-only.
func (b *Backend) Remove(ctx context.Context, bc *build.Context, names []string) error {
	if _, err := alpineOf(bc); err != nil {
		return err
	}
	return b.del(ctx, names)
}

// Installs whatever the given features still need.
//
// Features are resolved with [build.Context.Reconcile] against the Alpine
// table, and every name that was newly staged is installed in one apk
// invocation. Returns the features Alpine cannot provide; whether those
// fail the build is the caller's decision.
func (b *Backend) EnsurePackages(ctx context.Context, bc *build.Context, features []feature.Feature) ([]feature.Feature, error) {
	if _, err := alpineOf(bc); err != nil {
		return nil, err
	}

	install, unsupported := bc.Reconcile(b.registry, features)

	if len(unsupported) > 0 {
		slog.Info("features not supported on alpine", "features", unsupported)
	}

	if err := b.add(ctx, install); err != nil {
		return nil, err
	}

	return unsupported, nil
}

func (b *Backend) add(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	slog.Info("adding packages", "packages", names)

	args := append([]string{"--root", b.cfg.Root, "add"}, names...)
	if err := b.apk(ctx, nil, args...); err != nil {
		return fmt.Errorf("%w: adding packages: %w", ErrInstaller, err)
	}
	return nil
}

func (b *Backend) del(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	slog.Info("removing packages", "packages", names)

	args := append([]string{"--root", b.cfg.Root, "del"}, names...)
	if err := b.apk(ctx, nil, args...); err != nil {
		return fmt.Errorf("%w: removing packages: %w", ErrInstaller, err)
	}
	return nil
}
