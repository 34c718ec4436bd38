// Package heightmap defines core types, constants, and sentinel errors
// for the heightmap subpackage of github.com/katalvlaran/lazyterra.
package heightmap

import (
	"errors"
)

// Sentinel errors for heightmap operations.
var (
	// ErrCornerUnset indicates a dependency chain reached a corner cell with
	// no stored height. Corners are read, never computed, so generation
	// cannot proceed until the corner is set.
	ErrCornerUnset = errors.New("heightmap: corner height unset")
)

const (
	minSizeShift = 3
	maxSizeShift = 29
)

// MinSize is the smallest valid side length. A smaller size passed to New
// is raised to this value.
const MinSize = 1<<minSizeShift + 1

// MaxSize is the largest valid side length. A larger size passed to New
// is lowered to this value.
const MaxSize = 1<<maxSizeShift + 1

// InitStrategy selects how the grid is pre-filled at construction.
type InitStrategy int

const (
	// InitDiamondSquare seeds the four corners from the salted hash, then
	// runs full diamond-square passes down to the configured level.
	InitDiamondSquare InitStrategy = iota
	// InitSeed fills a sub-lattice (denser at higher levels) with salted
	// hash values; the corners are always part of the lattice.
	InitSeed
	// InitNone leaves the grid entirely unset. Generation requires the four
	// corners to be set explicitly first, otherwise ErrCornerUnset.
	InitNone
)

// Cell is one grid point as observed by a bulk operation.
type Cell struct {
	X, Y   int     // Wrapped coordinates within the grid
	Height float64 // Observed height; zero when Known is false
	Known  bool    // Whether the cell held a height when observed
}

// RoughnessFunc rescales the base roughness per cell before blending.
// It receives the cell coordinate and the map's clamped roughness and
// returns the value actually used as the jitter weight for that cell.
type RoughnessFunc func(x, y int, roughness float64) float64

// PostFunc reshapes a freshly blended height before it is stored.
// The core never clamps; a PostFunc is the place to impose bounds.
type PostFunc func(x, y int, height float64) float64

// JitterFunc maps a cell coordinate and the map seed to the seed of the
// single pseudorandom draw backing that cell's jitter term. It must be a
// pure function for the determinism guarantees to hold.
type JitterFunc func(x, y int, seed uint64) uint64
