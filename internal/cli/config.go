package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cruciblehq/cruxpkg/internal/alpine"
	"github.com/cruciblehq/cruxpkg/internal/paths"
)

const (

	// Runs commands on the machine cruxpkg runs on.
	TargetHost = "host"

	// Runs commands inside a running containerd task.
	TargetContainerd = "containerd"
)

// Where installer commands run.
type TargetConfig struct {
	Kind      string `yaml:"kind"`      // One of TargetHost or TargetContainerd.
	Address   string `yaml:"address"`   // Containerd socket.
	Namespace string `yaml:"namespace"` // Containerd namespace holding the build container.
	Container string `yaml:"container"` // Build container ID.
}

// Settings read from the configuration file.
//
// Paths other than State are interpreted by the target.
type Config struct {
	Distribution string       `yaml:"distribution"` // Distribution used by init.
	Version      string       `yaml:"version"`      // Release branch used by init and setup.
	Root         string       `yaml:"root"`         // Root filesystem being built.
	Installer    string       `yaml:"installer"`    // Package manager binary.
	Repositories string       `yaml:"repositories"` // Repository list copied into the root.
	KeysDir      string       `yaml:"keys_dir"`     // Repository signing keys.
	Manifest     string       `yaml:"manifest"`     // Installed-package listing written by finish.
	State        string       `yaml:"state"`        // Build context state file, on the local machine.
	Target       TargetConfig `yaml:"target"`
}

// Returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	layout := alpine.DefaultConfig()
	return &Config{
		Distribution: "alpine",
		Version:      alpine.LatestVersion,
		Root:         layout.Root,
		Installer:    layout.Installer,
		Repositories: layout.Repositories,
		KeysDir:      layout.KeysDir,
		Manifest:     layout.Manifest,
		State:        paths.StateFile(),
		Target: TargetConfig{
			Kind:      TargetHost,
			Address:   "/run/containerd/containerd.sock",
			Namespace: "crucible",
		},
	}
}

// Loads the configuration file at path over the defaults.
//
// An empty path selects the default location, which may be absent. An
// explicit path must exist. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = paths.ConfigFile()
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no configuration file", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	slog.Debug("configuration loaded", "path", path)

	return cfg, nil
}

// Checks values that cannot be caught later with a useful message.
func (c *Config) validate() error {
	switch c.Target.Kind {
	case TargetHost:
	case TargetContainerd:
		if c.Target.Container == "" {
			return errors.New("target.container is required for containerd targets")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, c.Target.Kind)
	}
	if c.State == "" {
		return errors.New("state path is empty")
	}
	return nil
}

// Returns the backend layout described by the configuration.
func (c *Config) alpineConfig() alpine.Config {
	return alpine.Config{
		Root:         c.Root,
		Installer:    c.Installer,
		Repositories: c.Repositories,
		KeysDir:      c.KeysDir,
		Manifest:     c.Manifest,
	}
}
