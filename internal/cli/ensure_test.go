package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/cruciblehq/cruxpkg/internal/feature"
)

func TestEnsureDecodesFeatures(t *testing.T) {
	var root struct {
		Ensure EnsureCmd `cmd:""`
	}
	parser, err := kong.New(&root)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"ensure", "--strict", "git", "nodejs-dev", "git"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []feature.Feature{feature.Git, feature.NodeJsDev, feature.Git}
	if diff := cmp.Diff(want, root.Ensure.Features); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
	if !root.Ensure.Strict {
		t.Fatal("Strict = false")
	}

	if _, err := parser.Parse([]string{"ensure", "git", "cobol"}); err == nil || !strings.Contains(err.Error(), "cobol") {
		t.Fatalf("err = %v, want unknown feature cobol", err)
	}
}

func TestReportUnsupported(t *testing.T) {
	unsupported := []feature.Feature{feature.Python3, feature.PipPy3, feature.Python3}

	tests := []struct {
		name   string
		strict bool
		want   error
	}{
		{"lenient", false, nil},
		{"strict", true, ErrUnsupportedFeatures},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := reportUnsupported(&out, unsupported, tt.strict)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got, want := out.String(), "python3\npip-py3\n"; got != want {
				t.Fatalf("output = %q, want %q", got, want)
			}
		})
	}
}

func TestReportUnsupportedNone(t *testing.T) {
	var out bytes.Buffer
	if err := reportUnsupported(&out, nil, true); err != nil {
		t.Fatalf("err = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want empty", out.String())
	}
}
