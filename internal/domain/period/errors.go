package period

import "errors"

var (
	// ErrInvalidPeriod is returned for malformed or inverted bounds.
	ErrInvalidPeriod = errors.New("invalid period")
	ErrUnknownPeriod = errors.New("unknown period")
)
