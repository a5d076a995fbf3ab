package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Sequence counter for generating unique exec process identifiers.
var execSeq uint64

// Returns a unique exec process identifier.
func nextExecID() string {
	return fmt.Sprintf("cruxpkg-exec-%d", atomic.AddUint64(&execSeq, 1))
}

// Runs a command, turning a non-zero exit code into a [CommandError].
func (c *Container) mustExec(ctx context.Context, stdin io.Reader, stdout io.Writer, args ...string) error {
	code, err := c.exec(ctx, stdin, stdout, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%w: %w", ErrCommandFailed, &CommandError{Args: args, Code: code})
	}
	return nil
}

// Runs a command inside the container and returns its exit code.
//
// A non-zero exit code is not treated as an error; the caller decides.
func (c *Container) exec(ctx context.Context, stdin io.Reader, stdout io.Writer, args ...string) (int, error) {
	slog.Debug("running command", "container", c.id, "args", args)

	pspec, err := c.processSpec(ctx, args)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return c.execProcess(ctx, pspec, stdin, stdout)
}

// Builds the OCI process spec for a command.
//
// The base values (user, working directory, capabilities) come from the
// container's own spec. The environment is cleared so that commands behave
// the same regardless of the image configuration.
func (c *Container) processSpec(ctx context.Context, args []string) (*specs.Process, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		return nil, err
	}

	spec, err := ctr.Spec(ctx)
	if err != nil {
		return nil, err
	}

	pspec := *spec.Process
	pspec.Terminal = false
	pspec.Args = args
	pspec.Env = nil

	return &pspec, nil
}

// Starts a process inside the container's running task, waits for it to
// exit, and returns the exit code.
//
// The process is attached to the task as an additional exec. Nil stdout is
// replaced with [io.Discard]; nil stdin leaves the process without input.
// When stdin is provided, the process stdin is closed once the reader is
// exhausted, since the containerd shim holds both ends of the stdin FIFO
// and will not propagate EOF on its own.
func (c *Container) execProcess(ctx context.Context, pspec *specs.Process, stdin io.Reader, stdout io.Writer) (int, error) {
	task, err := c.loadTask(ctx)
	if err != nil {
		return 0, err
	}

	if stdout == nil {
		stdout = io.Discard
	}
	stderr := c.stderr
	if stderr == nil {
		stderr = io.Discard
	}

	var stdinDone <-chan struct{}
	if stdin != nil {
		er := newEOFReader(stdin)
		stdin = er
		stdinDone = er.eof
	}

	process, err := task.Exec(ctx, nextExecID(), pspec, cio.NewCreator(
		cio.WithStreams(stdin, stdout, stderr),
	))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return awaitProcess(ctx, process, stdinDone)
}

// Loads the container's running task.
func (c *Container) loadTask(ctx context.Context) (containerd.Task, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return task, nil
}

// Starts an exec process and blocks until it exits.
//
// If stdinDone is non-nil, the process stdin is closed when the channel
// fires. The process is always deleted before returning.
func awaitProcess(ctx context.Context, process containerd.Process, stdinDone <-chan struct{}) (int, error) {
	statusC, err := process.Wait(ctx)
	if err != nil {
		process.Delete(ctx)
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	if err := process.Start(ctx); err != nil {
		process.Delete(ctx)
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	if stdinDone != nil {
		go func() {
			<-stdinDone
			process.CloseIO(ctx, containerd.WithStdinCloser)
		}()
	}

	exitStatus := <-statusC
	process.Delete(ctx)

	code, _, err := exitStatus.Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return int(code), nil
}
