package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/cruciblehq/cruxpkg/internal/paths"
)

// Version of the on-disk state layout.
const stateFormat = 1

// On-disk form of a [Context].
type state struct {
	Format       int      `cbor:"format"`
	Distribution string   `cbor:"distribution"`
	Version      string   `cbor:"version,omitempty"`
	BaseSetup    bool     `cbor:"base_setup,omitempty"`
	Persisted    []string `cbor:"persisted"`
	BuildOnly    []string `cbor:"build_only"`
}

// Encoder using Core Deterministic Encoding, so equal contexts always
// produce identical files.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("build: CBOR encoder initialization failed: " + err.Error())
	}
}

// Writes the context to path.
//
// The file is written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated state file behind.
func Save(path string, c *Context) error {
	s, err := toState(c)
	if err != nil {
		return err
	}

	data, err := encMode.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrState, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}
	if err := os.Chmod(tmp.Name(), paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	return nil
}

// Reads a context previously written by [Save].
//
// Returns [ErrNoState] if the file does not exist. An unknown distribution
// name in the file is an error; a context is never restored as [Unknown].
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoState, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrState, err)
	}

	var s state
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrState, path, err)
	}
	if s.Format != stateFormat {
		return nil, fmt.Errorf("%w: %s: unsupported format %d", ErrState, path, s.Format)
	}

	return fromState(s)
}

func toState(c *Context) (state, error) {
	s := state{
		Format:    stateFormat,
		Persisted: c.Persisted.Sorted(),
		BuildOnly: c.BuildOnly.Sorted(),
	}

	switch d := c.Distribution.(type) {
	case *Alpine:
		s.Distribution = "alpine"
		s.Version = d.Version
		s.BaseSetup = d.BaseSetup
	default:
		return state{}, fmt.Errorf("%w: cannot persist %s", ErrState, c.Distribution)
	}

	return s, nil
}

func fromState(s state) (*Context, error) {
	dist, err := NewDistribution(s.Distribution, s.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrState, err)
	}
	if a, ok := dist.(*Alpine); ok {
		a.BaseSetup = s.BaseSetup
	}

	return &Context{
		Distribution: dist,
		Persisted:    NewSet(s.Persisted...),
		BuildOnly:    NewSet(s.BuildOnly...),
	}, nil
}
