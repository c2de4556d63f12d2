// Package types defines the public data types and typed errors shared by
// every resxkit package.
//
// Keeping these in a leaf package lets the high-level API (pkg/resx,
// pkg/bundle) and the internal engine packages agree on error kinds and
// entry shapes without import cycles.
package types
