package shape

import "errors"

// Errors returned by shape constructors and group accumulation.
var (
	ErrMalformedInput      = errors.New("shape: malformed input distribution")
	ErrNotNormalized       = errors.New("shape: bin contents do not sum to unity")
	ErrInconsistentBinning = errors.New("shape: binning inconsistent with group")
	ErrDuplicateMass       = errors.New("shape: conflicting duplicate mass entry")
)
