package build

import "errors"

var (
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrNoState             = errors.New("no build context state")
	ErrState               = errors.New("build context state failed")
)
