package distro

import "errors"

var (
	ErrIncompleteTable = errors.New("incomplete distribution table")
)
