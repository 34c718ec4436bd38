// Package heightmap - coordinate arithmetic on the toroidal grid.
package heightmap

import (
	"math"
	"math/bits"
)

// wrap maps arbitrary coordinates onto the grid torus: while negative, add
// the side length; then reduce modulo the side length, per axis.
// Complexity: O(1) amortized (the loop runs |x|/size times at worst).
func (m *HeightMap) wrap(x, y int) (int, int) {
	if x >= 0 && x < m.size && y >= 0 && y < m.size {
		return x, y
	}
	for x < 0 {
		x += m.size
	}
	x %= m.size

	for y < 0 {
		y += m.size
	}
	y %= m.size

	return x, y
}

// wrapSquare wraps a square-step source coordinate. Any coordinate outside
// [0, maxCoord] is first pushed one more unit outward, compensating the odd
// lattice's parity at the seam: from x=0 an offset of -s lands on max-s,
// from x=max an offset of +s lands on s. Square-step reads are the only
// callers; diamond-step sources never leave the grid.
// Complexity: O(1).
func (m *HeightMap) wrapSquare(x, y int) (int, int) {
	if x < 0 {
		x--
	} else if x > m.maxCoord {
		x++
	}

	if y < 0 {
		y--
	} else if y > m.maxCoord {
		y++
	}

	return m.wrap(x, y)
}

// index maps wrapped coordinates to a row-major cell index: y*size + x.
// Complexity: O(1).
func (m *HeightMap) index(x, y int) int {
	return y*m.size + x
}

// isCorner reports whether wrapped (x,y) is one of the four corner cells.
// Complexity: O(1).
func (m *HeightMap) isCorner(x, y int) bool {
	return (x == 0 || x == m.maxCoord) && (y == 0 || y == m.maxCoord)
}

// levels returns how many diamond-square refinement levels the grid
// supports: log2(maxCoord).
func (m *HeightMap) levels() int {
	return bits.TrailingZeros(uint(m.maxCoord))
}

// stepOf returns the smallest power of two with a set bit in x or y.
// It identifies the cell's level in the diamond-square hierarchy.
// (x,y) must not be (0,0); corners are guarded before any step lookup.
// Complexity: O(log size).
func stepOf(x, y int) int {
	step := 1
	for x&step == 0 && y&step == 0 {
		step <<= 1
	}

	return step
}

// snapSize snaps a requested side length to the nearest valid 2^k+1,
// ties toward the larger rung, then clamps to [MinSize, MaxSize].
// Complexity: O(log size).
func snapSize(size int) int {
	if size <= MinSize {
		return MinSize
	}
	if size >= MaxSize {
		return MaxSize
	}
	for shift := minSizeShift + 1; shift <= maxSizeShift; shift++ {
		val := 1<<shift + 1
		if size > val {
			continue
		}
		if size == val {
			return size
		}
		prev := 1<<(shift-1) + 1
		if size-prev < val-size {
			return prev
		}

		return val
	}

	return MaxSize
}

// clampRoughness maps any requested roughness onto [0,1] via the absolute
// value, mirroring the construction contract: clamp, never reject.
func clampRoughness(r float64) float64 {
	r = math.Abs(r)
	if r > 1 {
		return 1
	}

	return r
}
