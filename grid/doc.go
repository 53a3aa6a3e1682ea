// Package grid computes the list of target masses for one interpolation
// run and drives the morphing engine over it.
//
// A [Scheduler] expands a configured step and mass range into an
// ascending grid of target masses, interpolates each one, and collects
// the results in mass order. Failures either abort the whole grid
// ([Strict], the default) or are skipped and reported per mass
// ([Lenient]). Interpolations are independent pure calls, so the
// scheduler can optionally fan them out across workers.
package grid
