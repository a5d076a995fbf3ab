package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
	}{
		{"config", ConfigFile(), "config.yaml"},
		{"state", StateFile(), "context.cbor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !filepath.IsAbs(tt.path) {
				t.Fatalf("path %q is not absolute", tt.path)
			}
			if filepath.Base(tt.path) != tt.base {
				t.Fatalf("base = %q, want %q", filepath.Base(tt.path), tt.base)
			}
			if filepath.Base(filepath.Dir(tt.path)) != programName {
				t.Fatalf("path %q not under %s", tt.path, programName)
			}
		})
	}
}
