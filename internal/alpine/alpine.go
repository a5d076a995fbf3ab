package alpine

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/capsule"
	"github.com/cruciblehq/cruxpkg/internal/distro"
)

const (

	// Release branch used when the build does not ask for one.
	LatestVersion = "v3.1"

	// Package set installed into a fresh root.
	BasePackage = "alpine-base"
)

// Root filesystem and executor the backend operates on.
//
// Paths are interpreted by the target: local paths for a host target, paths
// inside the container for a container target.
type Target interface {
	Run(ctx context.Context, args []string, stdout io.Writer) error
	MkdirAll(ctx context.Context, path string, perm os.FileMode) error
	CopyFile(ctx context.Context, src, dst string) error
	WriteFile(ctx context.Context, path string, data []byte) error
}

// Locations used by the backend.
type Config struct {
	Root         string // Root filesystem being built.
	Installer    string // Path to the apk binary.
	Repositories string // Repository list copied into the root, so apk uses the same mirror.
	KeysDir      string // Signing keys used during bootstrap.
	Manifest     string // Where the installed-package listing is written by Finish.
}

// Returns the standard build layout.
func DefaultConfig() Config {
	return Config{
		Root:         "/crux/root",
		Installer:    "/crux/bin/apk",
		Repositories: "/etc/apk/repositories",
		KeysDir:      "/etc/apk/keys",
		Manifest:     "/crux/container/alpine-packages.txt",
	}
}

// Runs apk against a target root.
type Backend struct {
	cfg      Config
	target   Target
	capsule  capsule.Provider
	registry build.Registry
}

// Creates a backend using the Alpine package table.
func New(cfg Config, target Target, provider capsule.Provider) *Backend {
	return &Backend{
		cfg:      cfg,
		target:   target,
		capsule:  provider,
		registry: distro.Alpine,
	}
}

// Runs apk with the given arguments.
func (b *Backend) apk(ctx context.Context, stdout io.Writer, args ...string) error {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, b.cfg.Installer)
	argv = append(argv, args...)
	return b.target.Run(ctx, argv, stdout)
}

// Returns the Alpine sub-state of the context, or an error naming the
// actual distribution.
func alpineOf(bc *build.Context) (*build.Alpine, error) {
	switch d := bc.Distribution.(type) {
	case *build.Alpine:
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleDistribution, bc.Distribution)
	}
}
