package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/build"
)

// Represents the 'cruxpkg finish' command.
type FinishCmd struct{}

// Executes the finish command.
//
// Prints the manifest path and digest on success.
func (c *FinishCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var m *alpine.Manifest
	err = withBackend(ctx, cfg, func(b *alpine.Backend, bc *build.Context) (err error) {
		m, err = b.Finish(ctx, bc)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", m.Path, m.Descriptor.Digest)
	return nil
}
