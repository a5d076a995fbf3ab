package runtime

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	containerd "github.com/containerd/containerd/v2/client"

	"github.com/cruciblehq/cruxpkg/internal/paths"
)

// A running build container backed by containerd.
//
// All paths are paths inside the container.
type Container struct {
	client *containerd.Client // Containerd client for managing the container.
	id     string             // Containerd container ID.
	stderr io.Writer          // Receives the stderr of every command.
}

// Runs a command inside the container and waits for it to exit.
//
// The process gets an empty environment and no stdin. Stdout is written to
// stdout, or discarded when stdout is nil. A non-zero exit code is reported
// as a [CommandError].
func (c *Container) Run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: empty command", ErrCommandFailed)
	}
	return c.mustExec(ctx, nil, stdout, args...)
}

// Reports whether a path exists inside the container.
func (c *Container) Exists(ctx context.Context, p string) (bool, error) {
	args := []string{"test", "-e", p}
	code, err := c.exec(ctx, nil, nil, args...)
	if err != nil {
		return false, err
	}
	return testResult(args, code)
}

// Interprets the exit code of test(1): 0 is true, 1 is false, anything
// else is a failure of the command itself.
func testResult(args []string, code int) (bool, error) {
	switch code {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrCommandFailed, &CommandError{Args: args, Code: code})
	}
}

// Creates a directory inside the container, including parents, and sets
// its permission bits.
func (c *Container) MkdirAll(ctx context.Context, p string, perm os.FileMode) error {
	if err := c.mustExec(ctx, nil, nil, "mkdir", "-p", p); err != nil {
		return err
	}
	return c.mustExec(ctx, nil, nil, "chmod", strconv.FormatUint(uint64(perm.Perm()), 8), p)
}

// Copies a regular file from the local filesystem into the container.
// An existing destination is replaced.
func (c *Container) CopyFile(ctx context.Context, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = path.Base(dst)

	return c.extract(ctx, path.Dir(dst), hdr, f)
}

// Writes data to a file inside the container, replacing any previous
// content.
func (c *Container) WriteFile(ctx context.Context, p string, data []byte) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     path.Base(p),
		Mode:     int64(paths.DefaultFileMode),
		Size:     int64(len(data)),
	}
	return c.extract(ctx, path.Dir(p), hdr, bytesReader(data))
}

// Streams a single-entry tar archive into "tar xf - -C dir" inside the
// container.
func (c *Container) extract(ctx context.Context, dir string, hdr *tar.Header, content io.Reader) error {
	pr, pw := io.Pipe()

	go func() {
		pw.CloseWithError(writeTarEntry(pw, hdr, content))
	}()

	err := c.mustExec(ctx, pr, nil, "tar", "xf", "-", "-C", dir)
	pr.Close()
	return err
}
