package capsule

import "errors"

var (
	ErrMissingCapability = errors.New("missing capability")
	ErrUnknownCapability = errors.New("unknown capability")
)
