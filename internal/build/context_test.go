package build

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cruciblehq/cruxpkg/internal/distro"
	"github.com/cruciblehq/cruxpkg/internal/feature"
)

// Registry backed by literal maps. A missing key is unsupported.
type fakeRegistry struct {
	build  map[feature.Feature][]string
	system map[feature.Feature][]string
}

func (r fakeRegistry) BuildDeps(f feature.Feature) ([]string, bool) {
	names, ok := r.build[f]
	return names, ok
}

func (r fakeRegistry) SystemDeps(f feature.Feature) ([]string, bool) {
	names, ok := r.system[f]
	return names, ok
}

func newAlpineContext() *Context {
	return New(&Alpine{Version: "v3.1"})
}

func assertSet(t *testing.T, label string, s *Set, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, s.Sorted(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", label, diff)
	}
}

func assertDisjoint(t *testing.T, c *Context) {
	t.Helper()
	for _, name := range c.Persisted.Sorted() {
		if c.BuildOnly.Contains(name) {
			t.Errorf("%q is both persisted and build-only", name)
		}
	}
}

func TestReconcileToolchainAndHeaders(t *testing.T) {
	c := newAlpineContext()

	install, unsupported := c.Reconcile(distro.Alpine, []feature.Feature{
		feature.BuildEssential,
		feature.Python2Dev,
	})

	if diff := cmp.Diff([]string{"build-base", "python-dev"}, install); diff != "" {
		t.Errorf("install mismatch (-want +got):\n%s", diff)
	}
	if len(unsupported) != 0 {
		t.Errorf("unsupported = %v, want none", unsupported)
	}
	assertSet(t, "build-only", c.BuildOnly, "build-base", "python-dev")
	assertSet(t, "persisted", c.Persisted)
}

func TestReconcileUnsupportedBuildSide(t *testing.T) {
	c := newAlpineContext()

	install, unsupported := c.Reconcile(distro.Alpine, []feature.Feature{feature.Python3})

	if len(install) != 0 {
		t.Errorf("install = %v, want none", install)
	}
	if diff := cmp.Diff([]feature.Feature{feature.Python3}, unsupported); diff != "" {
		t.Errorf("unsupported mismatch (-want +got):\n%s", diff)
	}
	assertSet(t, "build-only", c.BuildOnly)
	assertSet(t, "persisted", c.Persisted)
}

func TestReconcileAcrossCallsWithDistinctNames(t *testing.T) {
	c := newAlpineContext()

	install, _ := c.Reconcile(distro.Alpine, []feature.Feature{feature.NodeJsDev})
	if diff := cmp.Diff([]string{"nodejs-dev"}, install); diff != "" {
		t.Errorf("first install mismatch (-want +got):\n%s", diff)
	}
	assertSet(t, "build-only after first", c.BuildOnly, "nodejs-dev")

	install, _ = c.Reconcile(distro.Alpine, []feature.Feature{feature.Npm})
	if diff := cmp.Diff([]string{"nodejs"}, install); diff != "" {
		t.Errorf("second install mismatch (-want +got):\n%s", diff)
	}
	assertSet(t, "persisted after second", c.Persisted, "nodejs")
	assertSet(t, "build-only after second", c.BuildOnly, "nodejs-dev")
}

func TestReconcileDuplicateFeature(t *testing.T) {
	c := newAlpineContext()

	install, unsupported := c.Reconcile(distro.Alpine, []feature.Feature{
		feature.Git,
		feature.Git,
		feature.NodeJs,
		feature.Npm,
		feature.PipPy3,
		feature.PipPy3,
	})

	if diff := cmp.Diff([]string{"git", "nodejs"}, install); diff != "" {
		t.Errorf("install mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]feature.Feature{feature.PipPy3, feature.PipPy3}, unsupported); diff != "" {
		t.Errorf("unsupported mismatch (-want +got):\n%s", diff)
	}
	assertSet(t, "build-only", c.BuildOnly, "git")
	assertSet(t, "persisted", c.Persisted, "nodejs")
}

func TestReconcileSkipsInstalledNames(t *testing.T) {
	c := newAlpineContext()
	c.Reconcile(distro.Alpine, []feature.Feature{feature.Git})

	install, _ := c.Reconcile(distro.Alpine, []feature.Feature{feature.Git, feature.Mercurial})
	if diff := cmp.Diff([]string{"hg"}, install); diff != "" {
		t.Errorf("install mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcilePromotion(t *testing.T) {
	reg := fakeRegistry{
		build: map[feature.Feature][]string{
			feature.NodeJsDev: {"nodejs"},
			feature.NodeJs:    {},
		},
		system: map[feature.Feature][]string{
			feature.NodeJsDev: {},
			feature.NodeJs:    {"nodejs"},
		},
	}

	t.Run("across calls", func(t *testing.T) {
		c := newAlpineContext()
		c.Reconcile(reg, []feature.Feature{feature.NodeJsDev})
		assertSet(t, "build-only", c.BuildOnly, "nodejs")

		install, _ := c.Reconcile(reg, []feature.Feature{feature.NodeJs})
		if diff := cmp.Diff([]string{"nodejs"}, install); diff != "" {
			t.Errorf("install mismatch (-want +got):\n%s", diff)
		}
		assertSet(t, "persisted", c.Persisted, "nodejs")
		assertSet(t, "build-only", c.BuildOnly)
		assertDisjoint(t, c)
	})

	t.Run("within one call", func(t *testing.T) {
		c := newAlpineContext()
		install, _ := c.Reconcile(reg, []feature.Feature{feature.NodeJsDev, feature.NodeJs})

		if diff := cmp.Diff([]string{"nodejs"}, install); diff != "" {
			t.Errorf("install mismatch (-want +got):\n%s", diff)
		}
		assertSet(t, "persisted", c.Persisted, "nodejs")
		assertSet(t, "build-only", c.BuildOnly)
	})

	t.Run("persisted name is never build-only", func(t *testing.T) {
		c := newAlpineContext()
		c.Reconcile(reg, []feature.Feature{feature.NodeJs})

		install, _ := c.Reconcile(reg, []feature.Feature{feature.NodeJsDev})
		if len(install) != 0 {
			t.Errorf("install = %v, want none", install)
		}
		assertSet(t, "build-only", c.BuildOnly)
		assertDisjoint(t, c)
	})
}

func TestReconcileUnsupportedSystemSide(t *testing.T) {
	reg := fakeRegistry{
		build:  map[feature.Feature][]string{feature.Python3Dev: {"python3-dev"}},
		system: map[feature.Feature][]string{},
	}
	c := newAlpineContext()

	install, unsupported := c.Reconcile(reg, []feature.Feature{feature.Python3Dev})

	if diff := cmp.Diff([]string{"python3-dev"}, install); diff != "" {
		t.Errorf("install mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]feature.Feature{feature.Python3Dev}, unsupported); diff != "" {
		t.Errorf("unsupported mismatch (-want +got):\n%s", diff)
	}
	assertSet(t, "build-only", c.BuildOnly, "python3-dev")
}

func TestReconcileEmpty(t *testing.T) {
	c := newAlpineContext()
	install, unsupported := c.Reconcile(distro.Alpine, nil)
	if install != nil || unsupported != nil {
		t.Fatalf("Reconcile(nil) = %v, %v; want nil, nil", install, unsupported)
	}
}

func TestReconcileKeepsSetsDisjoint(t *testing.T) {
	c := newAlpineContext()
	c.Reconcile(distro.Alpine, feature.All())
	c.Reconcile(distro.Alpine, feature.All())
	assertDisjoint(t, c)
	assertSet(t, "persisted", c.Persisted, "nodejs", "python")
	assertSet(t, "build-only", c.BuildOnly, "build-base", "git", "hg", "nodejs-dev", "python-dev")
}
