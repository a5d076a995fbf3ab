package build

import "fmt"

// The distribution a build targets.
//
// The set of variants is closed. Callers match on the concrete type and
// must reject [Unknown] before doing any work.
type Distribution interface {
	fmt.Stringer
	distribution()
}

// Alpine Linux, with its bootstrap state.
type Alpine struct {
	Version   string // Release branch (e.g., "v3.1").
	BaseSetup bool   // Whether the base root filesystem has been bootstrapped. Never reverts.
}

func (*Alpine) distribution() {}

// Returns "alpine" followed by the version, when set.
func (a *Alpine) String() string {
	if a.Version == "" {
		return "alpine"
	}
	return "alpine " + a.Version
}

// A distribution this build cannot handle.
type Unknown struct {
	Name string // Name as given by the caller, for diagnostics.
}

func (Unknown) distribution() {}

// Returns a description including the rejected name.
func (u Unknown) String() string {
	if u.Name == "" {
		return "unknown distribution"
	}
	return fmt.Sprintf("unknown distribution %q", u.Name)
}

// Returns the distribution variant for a name.
//
// Unrecognized names yield an [Unknown] together with
// [ErrUnknownDistribution], so callers that want to carry on (for example,
// to report the failure later from a step) still get a usable value.
func NewDistribution(name, version string) (Distribution, error) {
	switch name {
	case "alpine":
		return &Alpine{Version: version}, nil
	default:
		return Unknown{Name: name}, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
}
