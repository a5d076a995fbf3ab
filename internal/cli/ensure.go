package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/feature"
)

// Represents the 'cruxpkg ensure' command.
type EnsureCmd struct {
	Features []feature.Feature `arg:"" name:"feature" help:"Features to provide (see 'cruxpkg features')."`
	Strict   bool              `help:"Fail if any feature is unsupported by the distribution."`
}

// Executes the ensure command.
//
// Unsupported features are printed one per line on stdout. They only fail
// the command with --strict, after the supported ones were installed.
func (c *EnsureCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var unsupported []feature.Feature
	err = withBackend(ctx, cfg, func(b *alpine.Backend, bc *build.Context) (err error) {
		unsupported, err = b.EnsurePackages(ctx, bc, c.Features)
		return err
	})
	if err != nil {
		return err
	}

	return reportUnsupported(os.Stdout, unsupported, c.Strict)
}

// Prints unsupported features, once each, and applies the strict policy.
func reportUnsupported(w io.Writer, unsupported []feature.Feature, strict bool) error {
	seen := make(map[feature.Feature]bool)
	var names []string
	for _, f := range unsupported {
		if seen[f] {
			continue
		}
		seen[f] = true
		names = append(names, f.String())
		fmt.Fprintln(w, f)
	}

	if strict && len(names) > 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFeatures, strings.Join(names, ", "))
	}
	return nil
}
