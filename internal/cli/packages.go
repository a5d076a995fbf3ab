package cli

import (
	"context"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/build"
)

// Represents the 'cruxpkg install' command.
type InstallCmd struct {
	Packages []string `arg:"" name:"package" help:"Package names, passed to the installer as given."`
}

// Executes the install command.
//
// Packages installed this way are not tracked in the build context.
func (c *InstallCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return withBackend(ctx, cfg, func(b *alpine.Backend, bc *build.Context) error {
		return b.Install(ctx, bc, c.Packages)
	})
}

// Represents the 'cruxpkg remove' command.
type RemoveCmd struct {
	Packages []string `arg:"" name:"package" help:"Package names, passed to the installer as given."`
}

// Executes the remove command.
func (c *RemoveCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return withBackend(ctx, cfg, func(b *alpine.Backend, bc *build.Context) error {
		return b.Remove(ctx, bc, c.Packages)
	})
}
