// Package matrix: sentinel error set.
// All entry points return these sentinels and callers match them with
// errors.Is; nothing in this package panics on user input.
package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
