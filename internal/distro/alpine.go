package distro

import "github.com/cruciblehq/cruxpkg/internal/feature"

// Package table for Alpine Linux.
//
// The Python 3 family has no mapping on the supported release. npm ships
// inside the nodejs package, so both features persist the same name.
var Alpine = &Table{
	Name: "alpine",
	Rules: map[feature.Feature]Rule{
		feature.BuildEssential: {Build: pkgs("build-base"), System: pkgs()},
		feature.Python2:        {Build: pkgs(), System: pkgs("python")},
		feature.Python2Dev:     {Build: pkgs("python-dev"), System: pkgs()},
		feature.Python3:        {Build: unsupported, System: unsupported},
		feature.Python3Dev:     {Build: unsupported, System: unsupported},
		feature.PipPy2:         {Build: unsupported, System: unsupported},
		feature.PipPy3:         {Build: unsupported, System: unsupported},
		feature.NodeJs:         {Build: pkgs(), System: pkgs("nodejs")},
		feature.NodeJsDev:      {Build: pkgs("nodejs-dev"), System: pkgs()},
		feature.Npm:            {Build: pkgs(), System: pkgs("nodejs")},
		feature.Git:            {Build: pkgs("git"), System: pkgs()},
		feature.Mercurial:      {Build: pkgs("hg"), System: pkgs()},
	},
}
