package cli

import (
	"cmp"
	"context"
	"log/slog"

	"github.com/cruciblehq/cruxpkg/internal/build"
)

// Represents the 'cruxpkg init' command.
type InitCmd struct {
	Distribution string `help:"Distribution to build (default: from configuration)." placeholder:"NAME"`
	Version      string `help:"Release branch (default: from configuration)." placeholder:"VERSION"`
}

// Executes the init command.
//
// Writes an empty build context to the state file, replacing any previous
// one. No packages are installed.
func (c *InitCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dist, err := build.NewDistribution(
		cmp.Or(c.Distribution, cfg.Distribution),
		cmp.Or(c.Version, cfg.Version),
	)
	if err != nil {
		return err
	}

	if err := build.Save(cfg.State, build.New(dist)); err != nil {
		return err
	}

	slog.Info("build context created", "distribution", dist, "state", cfg.State)

	return nil
}
