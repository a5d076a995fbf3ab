package internal

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

const (

	// Program name, used for the binary, the log prefix, and XDG directories
	Name = "cruxpkg"

	// Reported for build metadata that was not injected
	undefined = "(undefined)"

	// Reported instead of a version string for developer builds
	localBuild = "(local)"

	// Stage whose name is left out of version strings
	releaseStage = "main"
)

// Injected with -ldflags "-X github.com/cruciblehq/cruxpkg/internal.<name>=<value>".
var (
	version   = "" // Release version (e.g., "v1.2.3")
	stage     = "" // Branch the release was cut from (e.g., "main", "beta")
	gitCommit = "" // Commit hash

	rawQuiet   = "false" // Initial quiet mode
	rawDebug   = "false" // Initial debug mode
	rawVerbose = "false" // Initial verbose mode
)

// Returns the trimmed value, or "(undefined)" when empty.
func metadata(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return undefined
	}
	return v
}

// Returns the release version without its "v" prefix.
//
// Valid semantic versions are canonicalized ("v1.2" becomes "1.2.0"). Other
// values are lowercased and returned as injected.
func Version() string {
	v := strings.ToLower(metadata(version))
	if v == undefined {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if semver.IsValid(v) {
		v = semver.Canonical(v)
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the lowercased release stage.
func Stage() string {
	return strings.ToLower(metadata(stage))
}

// Returns the commit hash the binary was built from.
func GitCommit() string {
	return metadata(gitCommit)
}

// Returns the build architecture.
func Arch() string {
	return runtime.GOARCH
}

// Reports whether any release metadata is missing.
func IsLocal() bool {
	for _, v := range []string{version, stage, gitCommit} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Returns "<version>[+<stage>] <commit> [<arch>]", or "(local)" for
// developer builds. The stage is omitted for main.
func VersionString() string {
	if IsLocal() {
		return localBuild
	}

	suffix := ""
	if s := Stage(); s != releaseStage {
		suffix = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), suffix, GitCommit(), Arch())
}
