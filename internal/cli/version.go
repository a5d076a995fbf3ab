package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/cruxpkg/internal"
)

// Represents the 'cruxpkg version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Printf("%s %s\n", internal.Name, internal.VersionString())
	return nil
}
