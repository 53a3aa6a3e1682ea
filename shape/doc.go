// Package shape defines the value types shared by the resonance-shape
// pipeline:
//
//   - [Binning]:  a fixed set of strictly increasing bin edges
//   - [Shape]:    a unit-integral mass spectrum on a Binning
//   - [Group]:    the full set of simulated Shapes for one process/category
//
// Shapes are immutable once constructed and validated at construction
// time, so downstream numeric code never has to re-check bin counts,
// negative contents, or normalization.
//
// [Normalize] converts a raw simulated distribution (arbitrary scale,
// possibly containing negative or NaN bins) into a Shape.
package shape
