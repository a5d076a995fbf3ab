package alpine

import "errors"

var (
	ErrIncompatibleDistribution = errors.New("incompatible distribution")
	ErrFileSystemOperation      = errors.New("file system operation failed")
	ErrInstaller                = errors.New("installer failed")
	ErrInvalidVersion           = errors.New("invalid alpine version")
)
