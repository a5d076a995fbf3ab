package cli

import "errors"

var (
	ErrConfig              = errors.New("invalid configuration")
	ErrUnknownTarget       = errors.New("unknown target kind")
	ErrUnsupportedFeatures = errors.New("unsupported features")
)
