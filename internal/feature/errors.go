package feature

import "errors"

var (
	ErrUnknownFeature = errors.New("unknown feature")
)
