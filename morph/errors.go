package morph

import "errors"

// Errors returned by the interpolation engine.
var (
	ErrTooFewShapes    = errors.New("morph: need at least two input shapes")
	ErrOutOfRange      = errors.New("morph: target mass outside simulated range")
	ErrDegenerateShape = errors.New("morph: interpolated shape has vanishing integral")
	ErrUnknownPolicy   = errors.New("morph: unknown extrapolation policy")
)
