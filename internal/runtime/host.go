package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/cruciblehq/cruxpkg/internal/paths"
)

type (

	// Creates the command for a program and its arguments. Replaced in tests.
	CommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Configures a [Host].
	HostOption func(*Host)
)

// Runs commands and filesystem operations on the local machine.
type Host struct {
	command CommandFunc // Constructs commands; defaults to exec.CommandContext.
	stderr  io.Writer   // Receives the stderr of every command.
}

// Creates a host backend. Commands inherit the process's stderr unless
// overridden with [WithStderr].
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		command: exec.CommandContext,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Returns an option that replaces the command constructor.
func WithCommandFunc(fn CommandFunc) HostOption {
	return func(h *Host) {
		h.command = fn
	}
}

// Returns an option that redirects command stderr.
func WithStderr(w io.Writer) HostOption {
	return func(h *Host) {
		h.stderr = w
	}
}

// Runs a command and waits for it to exit.
//
// The environment is cleared and stdin is connected to the null device.
// Stdout is written to stdout, or discarded when stdout is nil.
func (h *Host) Run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: empty command", ErrCommandFailed)
	}

	cmd := h.command(ctx, args[0], args[1:]...)
	cmd.Env = []string{}
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = h.stderr

	slog.Debug("running command", "args", args)

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return fmt.Errorf("%w: %w", ErrCommandFailed, &CommandError{Args: args, Code: code, Cause: err})
	}

	return nil
}

// Reports whether a path exists.
func (h *Host) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Creates a directory and any missing parents.
func (h *Host) MkdirAll(_ context.Context, path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Copies a regular file byte for byte, keeping the source permissions.
// An existing destination is truncated.
func (h *Host) CopyFile(_ context.Context, src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// Writes data to a file, replacing any previous content.
func (h *Host) WriteFile(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, paths.DefaultFileMode)
}
