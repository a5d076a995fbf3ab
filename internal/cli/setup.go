package cli

import (
	"context"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/build"
)

// Represents the 'cruxpkg setup' command.
type SetupCmd struct{}

// Executes the setup command.
//
// Uses the version recorded in the build context, or the configured one if
// none was recorded.
func (c *SetupCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return withBackend(ctx, cfg, func(b *alpine.Backend, bc *build.Context) error {
		version := cfg.Version
		if a, ok := bc.Distribution.(*build.Alpine); ok && a.Version != "" {
			version = a.Version
		}
		return b.SetupBase(ctx, bc, version)
	})
}
