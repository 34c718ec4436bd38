// Package heightmap provides a lazily evaluated diamond-square heightfield
// on a toroidal grid. It supports:
//
//   - Sparse storage: every cell is either set or explicitly empty
//   - Toroidal addressing: any integer coordinate maps onto the grid
//   - On-demand generation (Gen/Regen) backed by an explicit dependency stack
//   - Eager pre-fill strategies at construction
//
// The four corner cells anchor all generation; they are seeded at
// construction (or by the caller) and only ever read.
package heightmap

// HeightMap is an odd-sized (2^k+1 per side) toroidal grid of optional
// heights, generated lazily by diamond-square midpoint displacement.
// All randomness is keyed by the seed; identical parameters reproduce
// identical grids. Not safe for concurrent use.
type HeightMap struct {
	size      int
	maxCoord  int
	roughness float64
	seed      uint64

	// Struct-of-arrays cell storage: present marks a cell as holding a
	// height, so an unset cell is distinct from a stored zero.
	values  []float64
	present []bool

	roughnessHook RoughnessFunc
	postHook      PostFunc
	jitter        JitterFunc
}

// New constructs a HeightMap and runs the configured eager initializer.
// It never fails: size snaps to the nearest 2^k+1 (ties toward the larger)
// within [MinSize, MaxSize], roughness clamps to [0,1] via absolute value,
// and out-of-range option values are clamped on use.
// Complexity: O(size²) memory; time O(4^InitLevel) under the eager
// strategies, O(1) extra under InitNone.
func New(size int, roughness float64, opts ...Option) *HeightMap {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	size = snapSize(size)
	m := &HeightMap{
		size:          size,
		maxCoord:      size - 1,
		roughness:     clampRoughness(roughness),
		values:        make([]float64, size*size),
		present:       make([]bool, size*size),
		roughnessHook: o.RoughnessHook,
		postHook:      o.PostHook,
		jitter:        o.Jitter,
	}

	if o.hasSeed {
		m.seed = HashSeed(o.Seed)
	} else {
		m.seed = deriveSeed(o.entropy())
	}

	m.init(o.InitLevel, o.InitBy)

	return m
}

// Size returns the side length of the grid.
func (m *HeightMap) Size() int {
	return m.size
}

// MaxCoord returns the largest in-range coordinate, size-1. Any coordinate
// beyond it wraps onto the torus instead of failing.
func (m *HeightMap) MaxCoord() int {
	return m.maxCoord
}

// Roughness returns the clamped base roughness.
func (m *HeightMap) Roughness() float64 {
	return m.roughness
}

// Seed returns the 64-bit seed keying all of the map's randomness.
func (m *HeightMap) Seed() uint64 {
	return m.seed
}

// Get returns the stored height at wrapped (x,y) and whether one is set.
// Complexity: O(1).
func (m *HeightMap) Get(x, y int) (float64, bool) {
	x, y = m.wrap(x, y)

	return m.at(x, y)
}

// Set stores a height at wrapped (x,y) and returns the displaced content:
// the previous height and whether one was set.
// Complexity: O(1).
func (m *HeightMap) Set(x, y int, h float64) (prev float64, hadPrev bool) {
	x, y = m.wrap(x, y)
	prev, hadPrev = m.at(x, y)
	m.put(x, y, h)

	return prev, hadPrev
}

// Unset clears the cell at wrapped (x,y) back to empty and returns the
// displaced content. Clearing a corner re-arms ErrCornerUnset for every
// chain that depends on it.
// Complexity: O(1).
func (m *HeightMap) Unset(x, y int) (prev float64, hadPrev bool) {
	x, y = m.wrap(x, y)
	prev, hadPrev = m.at(x, y)
	i := m.index(x, y)
	m.values[i] = 0
	m.present[i] = false

	return prev, hadPrev
}

// at reads storage at pre-wrapped coordinates.
func (m *HeightMap) at(x, y int) (float64, bool) {
	i := m.index(x, y)

	return m.values[i], m.present[i]
}

// put writes storage at pre-wrapped coordinates.
func (m *HeightMap) put(x, y int, h float64) {
	i := m.index(x, y)
	m.values[i] = h
	m.present[i] = true
}
