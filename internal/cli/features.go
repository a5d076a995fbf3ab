package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/distro"
	"github.com/cruciblehq/cruxpkg/internal/feature"
)

const (
	cellUnsupported = "unsupported"
	cellNone        = "-"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Represents the 'cruxpkg features' command.
type FeaturesCmd struct {
	Distribution string `help:"Distribution to list (default: from configuration)." placeholder:"NAME"`
}

// Executes the features command.
func (c *FeaturesCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := cmp.Or(c.Distribution, cfg.Distribution)
	t, ok := distro.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", build.ErrUnknownDistribution, name, strings.Join(distro.Names(), ", "))
	}

	return writeFeatureTable(os.Stdout, t)
}

// Renders the feature mapping of a table, one feature per row.
func writeFeatureTable(w io.Writer, t *distro.Table) error {
	rows := make([][]string, 0, len(feature.All()))
	for _, f := range feature.All() {
		buildNames, buildOK := t.BuildDeps(f)
		systemNames, systemOK := t.SystemDeps(f)
		rows = append(rows, []string{f.String(), cell(buildNames, buildOK), cell(systemNames, systemOK)})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FEATURE", "BUILD", "SYSTEM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func cell(names []string, ok bool) string {
	switch {
	case !ok:
		return cellUnsupported
	case len(names) == 0:
		return cellNone
	default:
		return strings.Join(names, " ")
	}
}
