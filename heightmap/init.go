// Package heightmap - eager initialization strategies.
package heightmap

import (
	"strconv"
)

// init pre-fills the grid per the configured strategy. The level clamps to
// [0, levels()]; an unknown strategy falls back to InitDiamondSquare.
func (m *HeightMap) init(level int, by InitStrategy) {
	if level < 0 {
		level = 0
	}
	if max := m.levels(); level > max {
		level = max
	}

	switch by {
	case InitNone:
	case InitSeed:
		m.initSeed(level)
	default:
		m.initDiamondSquare(level)
	}
}

// initDiamondSquare seeds the four corners from the salted hash, then runs
// alternating diamond and square passes down to the requested level. After
// level v the set cells form the complete (2^v+1)² coarse grid.
func (m *HeightMap) initDiamondSquare(level int) {
	corners := [4][2]int{
		{0, 0},
		{m.maxCoord, 0},
		{0, m.maxCoord},
		{m.maxCoord, m.maxCoord},
	}
	for _, c := range corners {
		m.put(c[0], c[1], m.hashAt(cornerKey(c[0], c[1])))
	}

	step := m.maxCoord
	shift := step >> 1
	for lvl := 0; lvl < level; lvl++ {
		// Diamond pass: centers sit shift off a step-aligned point on both
		// axes; their diagonal sources never leave the grid.
		for y := shift; y < m.size; y += step {
			for x := shift; x < m.size; x += step {
				var dep [4]float64
				dep[0], _ = m.at(x+shift, y-shift)
				dep[1], _ = m.at(x+shift, y+shift)
				dep[2], _ = m.at(x-shift, y+shift)
				dep[3], _ = m.at(x-shift, y-shift)
				m.put(x, y, m.blend(x, y, dep))
			}
		}

		step >>= 1

		// Square pass on the finer lattice, skipping cells an earlier pass
		// already filled; boundary sources take the nudged wrap.
		for y := 0; y < m.size; y += step {
			for x := 0; x < m.size; x += step {
				if _, ok := m.at(x, y); ok {
					continue
				}
				var dep [4]float64
				dep[0] = m.atSquare(x, y-shift)
				dep[1] = m.atSquare(x+shift, y)
				dep[2] = m.atSquare(x, y+shift)
				dep[3] = m.atSquare(x-shift, y)
				m.put(x, y, m.blend(x, y, dep))
			}
		}

		shift >>= 1
	}
}

// atSquare reads a square-pass source through the boundary-nudged wrap.
// Pass ordering guarantees the source is already set.
func (m *HeightMap) atSquare(x, y int) float64 {
	x, y = m.wrapSquare(x, y)
	h, _ := m.at(x, y)

	return h
}

// initSeed fills a row-major sub-lattice with salted hash values keyed by
// the visitation index. Level 2 keeps a 3×3 lattice (corners, edge
// midpoints, center); each further level doubles the density; levels 0
// and 1 fill every cell. The corners are always on the lattice.
func (m *HeightMap) initSeed(level int) {
	step := 1
	if level > 1 {
		step = m.maxCoord >> (level - 1)
	}

	n := 0
	for y := 0; y < m.size; y += step {
		for x := 0; x < m.size; x += step {
			m.put(x, y, m.hashAt(strconv.Itoa(n)))
			n++
		}
	}
}
