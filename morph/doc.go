// Package morph synthesizes a resonance shape at an arbitrary target mass
// from the simulated shapes bracketing it.
//
// The engine performs quantile (horizontal) morphing: the inverse
// cumulative distributions of the two bracketing shapes are interpolated
// on a fine probability grid and the blended quantile function is
// re-binned onto the group's binning. Interpolating in probability space
// keeps a resonance peak single and moving continuously with mass,
// where direct bin-content interpolation would split it into two.
//
// Exact matches pass through untouched, and out-of-range targets are
// handled according to an explicit [ExtrapolationPolicy].
package morph
