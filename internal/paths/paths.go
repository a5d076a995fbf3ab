package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	programName = "cruxpkg"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Default path to the configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/cruxpkg/config.yaml
//	macOS:   ~/Library/Application Support/cruxpkg/config.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, programName, "config.yaml")
}

// Default path to the persisted build context.
//
//	Linux:   $XDG_STATE_HOME/cruxpkg/context.cbor
//	macOS:   ~/Library/Application Support/cruxpkg/context.cbor
func StateFile() string {
	return filepath.Join(xdg.StateHome, programName, "context.cbor")
}
