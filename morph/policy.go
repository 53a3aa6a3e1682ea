package morph

import "fmt"

// ExtrapolationPolicy selects the behavior for target masses outside the
// simulated range.
type ExtrapolationPolicy int

const (
	// Forbid rejects out-of-range targets with ErrOutOfRange.
	Forbid ExtrapolationPolicy = iota
	// ClampToNearest returns the nearest-edge shape unchanged.
	ClampToNearest
	// LinearExtrapolate applies the morphing procedure to the two
	// nearest-edge mass points with an interpolation weight outside [0,1].
	LinearExtrapolate
)

// String returns the policy name.
func (p ExtrapolationPolicy) String() string {
	switch p {
	case Forbid:
		return "forbid"
	case ClampToNearest:
		return "clamp"
	case LinearExtrapolate:
		return "linear"
	default:
		return fmt.Sprintf("ExtrapolationPolicy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name ("forbid", "clamp", "linear") into
// an ExtrapolationPolicy.
func ParsePolicy(name string) (ExtrapolationPolicy, error) {
	switch name {
	case "forbid":
		return Forbid, nil
	case "clamp", "clamp-to-nearest":
		return ClampToNearest, nil
	case "linear", "linear-extrapolate":
		return LinearExtrapolate, nil
	default:
		return Forbid, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Provenance records how an interpolation result was produced.
type Provenance int

const (
	// Exact means the target mass matched a simulated mass point.
	Exact Provenance = iota
	// Interpolated means the result was morphed between two bracketing
	// simulated shapes.
	Interpolated
	// Extrapolated means the target mass lay outside the simulated range.
	Extrapolated
)

// String returns the provenance name.
func (p Provenance) String() string {
	switch p {
	case Exact:
		return "exact"
	case Interpolated:
		return "interpolated"
	case Extrapolated:
		return "extrapolated"
	default:
		return fmt.Sprintf("Provenance(%d)", int(p))
	}
}
