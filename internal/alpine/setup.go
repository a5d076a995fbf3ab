package alpine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/mod/semver"

	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/capsule"
	"github.com/cruciblehq/cruxpkg/internal/paths"
)

// Bootstraps the base root filesystem.
//
// Does nothing if the base is already set up. Otherwise ensures the
// installer is available, creates the apk configuration directory in the
// root, copies the repository list into it, and initializes the package
// database with [BasePackage]. The context is marked as set up only when
// every step succeeds, so a failed bootstrap can be retried from scratch.
//
// The version must be an Alpine release branch, either numbered ("v3.1")
// or named ("edge", "latest-stable"). It is recorded in the context if none
// was recorded before.
func (b *Backend) SetupBase(ctx context.Context, bc *build.Context, version string) error {
	a, err := alpineOf(bc)
	if err != nil {
		return err
	}

	if a.BaseSetup {
		slog.Debug("base already set up", "distribution", a)
		return nil
	}

	if !validVersion(version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}

	slog.Info("setting up base", "version", version, "root", b.cfg.Root)

	if err := b.capsule.EnsureFeatures(ctx, capsule.AlpineInstaller); err != nil {
		return err
	}

	apkDir := filepath.Join(b.cfg.Root, "etc", "apk")
	if err := b.target.MkdirAll(ctx, apkDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: creating apk dir: %w", ErrFileSystemOperation, err)
	}

	repositories := filepath.Join(apkDir, "repositories")
	if err := b.target.CopyFile(ctx, b.cfg.Repositories, repositories); err != nil {
		return fmt.Errorf("%w: creating apk repositories: %w", ErrFileSystemOperation, err)
	}

	err = b.apk(ctx, nil,
		"--update-cache",
		"--keys-dir="+b.cfg.KeysDir,
		"--root="+b.cfg.Root,
		"--initdb",
		"add",
		BasePackage,
	)
	if err != nil {
		return fmt.Errorf("%w: bootstrapping base: %w", ErrInstaller, err)
	}

	if a.Version == "" {
		a.Version = version
	}
	a.BaseSetup = true

	return nil
}

// Release branches that are not numbered.
var namedBranches = map[string]bool{
	"edge":          true,
	"latest-stable": true,
}

// Reports whether version names an Alpine release branch.
func validVersion(version string) bool {
	return namedBranches[version] || semver.IsValid(version)
}
