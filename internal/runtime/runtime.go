package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/errdefs"
)

// Holds the containerd client used to reach build containers.
type Runtime struct {
	client *containerd.Client // Containerd client for managing containers.
}

// Creates a runtime connected to the containerd socket at the given address.
//
// The namespace scopes all containerd operations to a single tenant and must
// match the namespace the build pipeline created its containers in. The
// runtime must be closed when no longer needed.
func New(address, namespace string) (*Runtime, error) {
	client, err := containerd.New(address, containerd.WithDefaultNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return &Runtime{client: client}, nil
}

// Closes the containerd client connection.
func (rt *Runtime) Close() error {
	return rt.client.Close()
}

// Returns a handle to a running build container.
//
// The container must exist and have a running task. Returns
// [ErrContainerNotRunning] otherwise. Command stderr is forwarded to the
// process's stderr.
func (rt *Runtime) Container(ctx context.Context, id string) (*Container, error) {
	c := &Container{
		client: rt.client,
		id:     id,
		stderr: os.Stderr,
	}

	running, err := c.Running(ctx)
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotRunning, id)
	}

	return c, nil
}

// Returns a container handle writing command stderr to w.
func (c *Container) WithStderr(w io.Writer) *Container {
	cp := *c
	cp.stderr = w
	return &cp
}

// Reports whether the container exists and its task is running.
func (c *Container) Running(ctx context.Context) (bool, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	status, err := task.Status(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return status.Status == containerd.Running, nil
}
