// Package decoder provides functions that decode configuration subtrees into Go values.
package decoder

// Func decodes a canonical configuration value (usually a map[string]any)
// into target, which must be a non-nil pointer.
type Func func(data any, target any) error
