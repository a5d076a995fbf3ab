package alpine

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/cruciblehq/cruxpkg/internal/build"
	"github.com/cruciblehq/cruxpkg/internal/capsule"
)

// Target that records operations instead of touching the system.
type fakeTarget struct {
	runs   [][]string
	dirs   map[string]os.FileMode
	copies map[string]string
	files  map[string][]byte

	stdout   string           // Written to stdout by every run that captures it.
	failRun  map[string]error // Keyed by apk subcommand ("add", "del", "info").
	mkdirErr error
	copyErr  error
	writeErr error
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		dirs:    make(map[string]os.FileMode),
		copies:  make(map[string]string),
		files:   make(map[string][]byte),
		failRun: make(map[string]error),
	}
}

func (f *fakeTarget) Run(_ context.Context, args []string, stdout io.Writer) error {
	f.runs = append(f.runs, args)
	for _, a := range args {
		if err, ok := f.failRun[a]; ok {
			return err
		}
	}
	if stdout != nil {
		io.WriteString(stdout, f.stdout)
	}
	return nil
}

func (f *fakeTarget) MkdirAll(_ context.Context, path string, perm os.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	f.dirs[path] = perm
	return nil
}

func (f *fakeTarget) CopyFile(_ context.Context, src, dst string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copies[dst] = src
	return nil
}

func (f *fakeTarget) WriteFile(_ context.Context, path string, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.files[path] = append([]byte(nil), data...)
	return nil
}

// Returns the recorded runs as space-joined strings.
func (f *fakeTarget) commands() []string {
	cmds := make([]string, 0, len(f.runs))
	for _, r := range f.runs {
		cmds = append(cmds, strings.Join(r, " "))
	}
	return cmds
}

// Provider that counts calls.
type fakeProvider struct {
	calls int
	err   error
}

func (p *fakeProvider) EnsureFeatures(_ context.Context, caps ...capsule.Capability) error {
	p.calls++
	return p.err
}

var errBoom = errors.New("boom")

var testConfig = Config{
	Root:         "/r",
	Installer:    "/bin/apk",
	Repositories: "/etc/apk/repositories",
	KeysDir:      "/etc/apk/keys",
	Manifest:     "/c/alpine-packages.txt",
}

func newTestBackend() (*Backend, *fakeTarget, *fakeProvider) {
	target := newFakeTarget()
	provider := &fakeProvider{}
	return New(testConfig, target, provider), target, provider
}

func newContext() *build.Context {
	return build.New(&build.Alpine{Version: LatestVersion})
}
