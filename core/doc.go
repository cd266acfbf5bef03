// Package core contains the form widget state machines and their styling
// contracts.
//
// Allowed here:
// - widget state (checkbox, choice group), selection and toggle logic
// - key registry, focus ring, variant-to-style resolution
// - shared theme palette and glyph sets
//
// Not allowed here:
// - application chrome (headers, status bars, footers)
// - configuration loading or any I/O
package core
