package distro

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cruciblehq/cruxpkg/internal/feature"
)

func TestRegisteredTablesComplete(t *testing.T) {
	for _, name := range Names() {
		table, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if err := table.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateMissingRule(t *testing.T) {
	table := &Table{
		Name:  "partial",
		Rules: map[feature.Feature]Rule{feature.Git: {Build: pkgs("git"), System: pkgs()}},
	}
	if err := table.Validate(); !errors.Is(err, ErrIncompleteTable) {
		t.Fatalf("err = %v, want ErrIncompleteTable", err)
	}
}

func TestValidateUnsupportedWithNames(t *testing.T) {
	rules := make(map[feature.Feature]Rule)
	for _, f := range feature.All() {
		rules[f] = Rule{Build: pkgs(), System: pkgs()}
	}
	rules[feature.Git] = Rule{Build: Mapping{Names: []string{"git"}}, System: pkgs()}

	table := &Table{Name: "broken", Rules: rules}
	if err := table.Validate(); !errors.Is(err, ErrIncompleteTable) {
		t.Fatalf("err = %v, want ErrIncompleteTable", err)
	}
}

func TestAlpineTable(t *testing.T) {
	tests := []struct {
		feature  feature.Feature
		build    []string
		buildOK  bool
		system   []string
		systemOK bool
	}{
		{feature.BuildEssential, []string{"build-base"}, true, []string{}, true},
		{feature.Python2, []string{}, true, []string{"python"}, true},
		{feature.Python2Dev, []string{"python-dev"}, true, []string{}, true},
		{feature.Python3, nil, false, nil, false},
		{feature.Python3Dev, nil, false, nil, false},
		{feature.PipPy2, nil, false, nil, false},
		{feature.PipPy3, nil, false, nil, false},
		{feature.NodeJs, []string{}, true, []string{"nodejs"}, true},
		{feature.NodeJsDev, []string{"nodejs-dev"}, true, []string{}, true},
		{feature.Npm, []string{}, true, []string{"nodejs"}, true},
		{feature.Git, []string{"git"}, true, []string{}, true},
		{feature.Mercurial, []string{"hg"}, true, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.feature.String(), func(t *testing.T) {
			build, ok := Alpine.BuildDeps(tt.feature)
			if ok != tt.buildOK {
				t.Fatalf("BuildDeps ok = %v, want %v", ok, tt.buildOK)
			}
			if ok && len(build)+len(tt.build) > 0 {
				if diff := cmp.Diff(tt.build, build); diff != "" {
					t.Errorf("BuildDeps mismatch (-want +got):\n%s", diff)
				}
			}

			system, ok := Alpine.SystemDeps(tt.feature)
			if ok != tt.systemOK {
				t.Fatalf("SystemDeps ok = %v, want %v", ok, tt.systemOK)
			}
			if ok && len(system)+len(tt.system) > 0 {
				if diff := cmp.Diff(tt.system, system); diff != "" {
					t.Errorf("SystemDeps mismatch (-want +got):\n%s", diff)
				}
			}

			if got := Alpine.Supports(tt.feature); got != (tt.buildOK && tt.systemOK) {
				t.Errorf("Supports = %v", got)
			}
		})
	}
}

func TestDepsReturnsCopy(t *testing.T) {
	names, _ := Alpine.BuildDeps(feature.Git)
	names[0] = "mutated"

	again, _ := Alpine.BuildDeps(feature.Git)
	if again[0] != "git" {
		t.Fatalf("table mutated through returned slice: %v", again)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("plan9"); ok {
		t.Fatal("Lookup(plan9) succeeded")
	}
}
