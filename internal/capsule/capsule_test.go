package capsule

import (
	"context"
	"errors"
	"testing"
)

type fakeTarget struct {
	present map[string]bool
	err     error
}

func (f fakeTarget) Exists(_ context.Context, path string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.present[path], nil
}

var layout = Layout{Installer: "/crux/bin/apk", KeysDir: "/etc/apk/keys"}

func TestCheckerPresent(t *testing.T) {
	c := NewChecker(fakeTarget{present: map[string]bool{
		"/crux/bin/apk": true,
		"/etc/apk/keys": true,
	}}, layout)

	if err := c.EnsureFeatures(context.Background(), AlpineInstaller); err != nil {
		t.Fatalf("EnsureFeatures: %v", err)
	}
}

func TestCheckerMissing(t *testing.T) {
	tests := []struct {
		name    string
		present map[string]bool
	}{
		{"no installer", map[string]bool{"/etc/apk/keys": true}},
		{"no keys", map[string]bool{"/crux/bin/apk": true}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(fakeTarget{present: tt.present}, layout)
			err := c.EnsureFeatures(context.Background(), AlpineInstaller)
			if !errors.Is(err, ErrMissingCapability) {
				t.Fatalf("err = %v, want ErrMissingCapability", err)
			}
		})
	}
}

func TestCheckerTargetError(t *testing.T) {
	boom := errors.New("boom")
	c := NewChecker(fakeTarget{err: boom}, layout)

	err := c.EnsureFeatures(context.Background(), AlpineInstaller)
	if !errors.Is(err, ErrMissingCapability) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want ErrMissingCapability wrapping boom", err)
	}
}

func TestCheckerUnknownCapability(t *testing.T) {
	c := NewChecker(fakeTarget{}, layout)
	err := c.EnsureFeatures(context.Background(), Capability(42))
	if !errors.Is(err, ErrUnknownCapability) {
		t.Fatalf("err = %v, want ErrUnknownCapability", err)
	}
}

func TestCheckerNoCapabilities(t *testing.T) {
	c := NewChecker(fakeTarget{}, layout)
	if err := c.EnsureFeatures(context.Background()); err != nil {
		t.Fatalf("EnsureFeatures() = %v, want nil", err)
	}
}
