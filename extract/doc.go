// Package extract handles the file-format plumbing around the morphing
// core: parsing group dictionary list files, serializing a shape group
// into its mass-ordered lookup table, and writing interpolated result
// tables. It performs no numerical transformation beyond identity.
package extract
