// Package lattice defines core types and sentinel errors for the spin grid.
package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrInvalidSize indicates a non-positive lattice side length.
	ErrInvalidSize = errors.New("lattice: side length must be positive")
	// ErrNonSquare indicates a restart configuration whose rows do not form an L×L grid.
	ErrNonSquare = errors.New("lattice: configuration must be square")
	// ErrInvalidSpin indicates a restart configuration containing a value other than ±1.
	ErrInvalidSpin = errors.New("lattice: every spin must be -1 or +1")
	// ErrNilRand indicates a nil random source passed to New.
	ErrNilRand = errors.New("lattice: random source must be non-nil")
)

// Spin is a two-state site variable, always -1 or +1.
type Spin = int8

// Up and Down are the two admissible spin values.
const (
	Up   Spin = +1
	Down Spin = -1
)
