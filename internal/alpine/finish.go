package alpine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/cruciblehq/cruxpkg/internal/build"
)

// Media type of the installed-package manifest.
const MediaTypePackageList = "text/plain"

// The installed-package listing written by [Backend.Finish].
type Manifest struct {
	Path       string             // Where the listing was written.
	Descriptor ocispec.Descriptor // Content descriptor, for attaching the listing to the image.
}

// Finalizes the root for export.
//
// Removes every package currently marked build-only, then writes the
// verbose apk package listing to the manifest path, replacing any previous
// file. The build-only set is emptied once the packages are gone.
func (b *Backend) Finish(ctx context.Context, bc *build.Context) (*Manifest, error) {
	if _, err := alpineOf(bc); err != nil {
		return nil, err
	}

	if err := b.del(ctx, bc.BuildOnly.Sorted()); err != nil {
		return nil, err
	}
	bc.BuildOnly.Clear()

	var out bytes.Buffer
	if err := b.apk(ctx, &out, "--root", b.cfg.Root, "-vv", "info"); err != nil {
		return nil, fmt.Errorf("%w: dumping package list: %w", ErrInstaller, err)
	}

	data := out.Bytes()
	if err := b.target.WriteFile(ctx, b.cfg.Manifest, data); err != nil {
		return nil, fmt.Errorf("%w: dumping package list: %w", ErrFileSystemOperation, err)
	}

	m := &Manifest{
		Path: b.cfg.Manifest,
		Descriptor: ocispec.Descriptor{
			MediaType: MediaTypePackageList,
			Digest:    digest.FromBytes(data),
			Size:      int64(len(data)),
			Annotations: map[string]string{
				ocispec.AnnotationTitle: filepath.Base(b.cfg.Manifest),
			},
		},
	}

	slog.Info("package manifest written", "path", m.Path, "digest", m.Descriptor.Digest)

	return m, nil
}
