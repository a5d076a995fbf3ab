package feature

import "fmt"

// An abstract capability request made by a build step.
type Feature int

const (
	BuildEssential Feature = iota // C/C++ toolchain and make.
	Python2                       // Python 2 interpreter.
	Python2Dev                    // Python 2 development headers.
	Python3                       // Python 3 interpreter.
	Python3Dev                    // Python 3 development headers.
	PipPy2                        // pip for Python 2.
	PipPy3                        // pip for Python 3.
	NodeJs                        // Node.js runtime.
	NodeJsDev                     // Node.js development headers.
	Npm                           // npm package manager.
	Git                           // Git client.
	Mercurial                     // Mercurial client.

	count // Number of features. Must stay last.
)

// Canonical names, indexed by feature.
var names = [count]string{
	BuildEssential: "build-essential",
	Python2:        "python2",
	Python2Dev:     "python2-dev",
	Python3:        "python3",
	Python3Dev:     "python3-dev",
	PipPy2:         "pip-py2",
	PipPy3:         "pip-py3",
	NodeJs:         "nodejs",
	NodeJsDev:      "nodejs-dev",
	Npm:            "npm",
	Git:            "git",
	Mercurial:      "mercurial",
}

// Returns every feature in declaration order.
func All() []Feature {
	all := make([]Feature, 0, count)
	for f := range count {
		all = append(all, f)
	}
	return all
}

// Returns the feature with the given canonical name.
func Parse(name string) (Feature, error) {
	for f, n := range names {
		if n == name {
			return Feature(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// Returns the canonical name, or "feature(N)" for out-of-range values.
func (f Feature) String() string {
	if f < 0 || f >= count {
		return fmt.Sprintf("feature(%d)", int(f))
	}
	return names[f]
}

// Encodes the feature as its canonical name.
func (f Feature) MarshalText() ([]byte, error) {
	if f < 0 || f >= count {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFeature, int(f))
	}
	return []byte(names[f]), nil
}

// Decodes a canonical name. Kong uses this to decode feature arguments.
func (f *Feature) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
