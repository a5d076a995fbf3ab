package capsule

import (
	"context"
	"fmt"
	"log/slog"
)

// A capability a distribution backend can require from the capsule.
type Capability int

const (
	AlpineInstaller Capability = iota // The apk binary and its signing keys.
)

// Returns the capability name.
func (c Capability) String() string {
	switch c {
	case AlpineInstaller:
		return "alpine-installer"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// Ensures capabilities are available before a backend uses them.
type Provider interface {
	EnsureFeatures(ctx context.Context, caps ...Capability) error
}

// Filesystem view used by [Checker].
type Target interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// Locations of the files that make up each capability.
type Layout struct {
	Installer string // Path to the apk binary.
	KeysDir   string // Directory holding the repository signing keys.
}

// Provider that checks required files exist and never installs anything.
type Checker struct {
	target Target
	layout Layout
}

// Creates a checker resolving paths through target.
func NewChecker(target Target, layout Layout) *Checker {
	return &Checker{target: target, layout: layout}
}

// Verifies that every requested capability is present.
//
// Returns [ErrMissingCapability] naming the first missing path.
func (c *Checker) EnsureFeatures(ctx context.Context, caps ...Capability) error {
	for _, capability := range caps {
		required, err := c.required(capability)
		if err != nil {
			return err
		}
		for _, p := range required {
			ok, err := c.target.Exists(ctx, p)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrMissingCapability, capability, err)
			}
			if !ok {
				return fmt.Errorf("%w: %s: %s not found", ErrMissingCapability, capability, p)
			}
		}
		slog.Debug("capability present", "capability", capability)
	}
	return nil
}

// Returns the paths a capability consists of.
func (c *Checker) required(capability Capability) ([]string, error) {
	switch capability {
	case AlpineInstaller:
		return []string{c.layout.Installer, c.layout.KeysDir}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, capability)
	}
}
