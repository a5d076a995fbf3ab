package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/capsule"
	"github.com/cruciblehq/cruxpkg/internal/runtime"
)

// Everything a backend needs from where commands run.
type target interface {
	alpine.Target
	capsule.Target
}

// Opens the configured target, sending installer stderr to stderr. The
// returned function releases it.
func openTarget(ctx context.Context, cfg TargetConfig, stderr io.Writer) (target, func(), error) {
	switch cfg.Kind {
	case TargetHost:
		return runtime.NewHost(runtime.WithStderr(stderr)), func() {}, nil

	case TargetContainerd:
		rt, err := runtime.New(cfg.Address, cfg.Namespace)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if err := rt.Close(); err != nil {
				slog.Warn("failed to close containerd client", "error", err)
			}
		}

		ctr, err := rt.Container(ctx, cfg.Container)
		if err != nil {
			release()
			return nil, nil, err
		}
		return ctr.WithStderr(stderr), release, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTarget, cfg.Kind)
	}
}

// Loads the build context, falling back to a fresh one from the configuration.
func loadContext(cfg *Config) (*build.Context, error) {
	bc, err := build.Load(cfg.State)
	if err == nil {
		return bc, nil
	}
	if !errors.Is(err, build.ErrNoState) {
		return nil, err
	}

	dist, err := build.NewDistribution(cfg.Distribution, cfg.Version)
	if err != nil {
		return nil, err
	}

	slog.Debug("starting new build context", "distribution", dist, "state", cfg.State)

	return build.New(dist), nil
}

// Runs fn with a backend and the stored build context.
//
// The context is saved after fn returns, including when fn fails, so that
// partial progress is not lost. Errors from fn and from saving are joined.
func withBackend(ctx context.Context, cfg *Config, fn func(*alpine.Backend, *build.Context) error) error {
	bc, err := loadContext(cfg)
	if err != nil {
		return err
	}

	tgt, release, err := openTarget(ctx, cfg.Target, os.Stderr)
	if err != nil {
		return err
	}
	defer release()

	checker := capsule.NewChecker(tgt, capsule.Layout{
		Installer: cfg.Installer,
		KeysDir:   cfg.KeysDir,
	})
	backend := alpine.New(cfg.alpineConfig(), tgt, checker)

	runErr := fn(backend, bc)

	if err := build.Save(cfg.State, bc); err != nil {
		return errors.Join(runErr, err)
	}
	slog.Debug("build context saved", "state", cfg.State)

	return runErr
}
