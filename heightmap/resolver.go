// Package heightmap - the lazy dependency resolver.
//
// A cell's height blends the heights of four neighbors: the diagonal ring
// at its step distance for diamond cells, the orthogonal ring for square
// cells. Resolving a cell therefore means resolving whichever of those
// neighbors are still empty, and so on, down to the corners. The walk is
// iterative: an explicit frame stack replaces recursion, bounded at about
// sixty frames even on the deepest grid.
//
// Dependency ranks strictly increase toward the corners (a square cell at
// step s feeds from diamond cells at s and square cells at 2s or coarser;
// a diamond cell feeds from cells at 2s or coarser), so the dependency
// graph is a DAG and the stack never revisits a live frame.
package heightmap

import (
	"fmt"
)

// resolveStackCap covers the deepest possible dependency chain: two frames
// per level, 29 levels, plus slack.
const resolveStackCap = 64

// frame is one in-flight cell on the resolution stack.
type frame struct {
	x, y    int
	step    int
	diamond bool
	next    int        // next dependency slot to fill, 0..3
	dep     [4]float64 // gathered dependency heights
}

// newFrame classifies (x,y): its step is the smallest power of two with a
// set coordinate bit, and the cell is a diamond cell when both coordinates
// carry that bit.
func newFrame(x, y int) frame {
	s := stepOf(x, y)

	return frame{x: x, y: y, step: s, diamond: x&s != 0 && y&s != 0}
}

// depCoord returns the frame's next dependency coordinate. Diamond cells
// read the diagonal neighbors in NE, SE, SW, NW order; square cells read
// the orthogonal neighbors in N, E, S, W order with the boundary-nudged
// wrap. Diamond sources provably never leave the grid, so the plain wrap
// is an identity there.
func (m *HeightMap) depCoord(f *frame) (int, int) {
	var x, y int
	if f.diamond {
		switch f.next {
		case 0:
			x, y = f.x+f.step, f.y-f.step
		case 1:
			x, y = f.x+f.step, f.y+f.step
		case 2:
			x, y = f.x-f.step, f.y+f.step
		default:
			x, y = f.x-f.step, f.y-f.step
		}

		return m.wrap(x, y)
	}

	switch f.next {
	case 0:
		x, y = f.x, f.y-f.step
	case 1:
		x, y = f.x+f.step, f.y
	case 2:
		x, y = f.x, f.y+f.step
	default:
		x, y = f.x-f.step, f.y
	}

	return m.wrapSquare(x, y)
}

// resolve computes the height of pre-wrapped, non-corner (x,y), storing
// every intermediate cell it computes along the way. Returns ErrCornerUnset
// if any dependency chain reaches an empty corner.
// Complexity: O(L) frames, L ≤ 2·log2(size-1)+1; O(1) work per visit.
func (m *HeightMap) resolve(x, y int) (float64, error) {
	stack := make([]frame, 1, resolveStackCap)
	stack[0] = newFrame(x, y)

	for {
		f := &stack[len(stack)-1]
		nx, ny := m.depCoord(f)

		if h, ok := m.at(nx, ny); ok {
			f.dep[f.next] = h
			f.next++
			if f.next < 4 {
				continue
			}

			// All four dependencies gathered: blend, store, pop.
			h = m.blend(f.x, f.y, f.dep)
			m.put(f.x, f.y, h)
			if len(stack) == 1 {
				return h, nil
			}
			stack = stack[:len(stack)-1]

			continue
		}

		if m.isCorner(nx, ny) {
			return 0, fmt.Errorf("%w: corner (%d,%d) on the chain from (%d,%d)", ErrCornerUnset, nx, ny, x, y)
		}

		// Empty non-corner dependency: descend. The current frame's slot is
		// revisited once the new frame resolves.
		stack = append(stack, newFrame(nx, ny))
	}
}

// Gen returns the height at wrapped (x,y), resolving it first if the cell
// is empty. The second return reports whether this call computed the value
// (true) or found it stored (false). An empty corner cannot be resolved and
// yields ErrCornerUnset.
// Complexity: O(1) when stored; otherwise one resolve walk.
func (m *HeightMap) Gen(x, y int) (float64, bool, error) {
	x, y = m.wrap(x, y)
	if h, ok := m.at(x, y); ok {
		return h, false, nil
	}
	if m.isCorner(x, y) {
		return 0, false, fmt.Errorf("%w: corner (%d,%d)", ErrCornerUnset, x, y)
	}

	h, err := m.resolve(x, y)
	if err != nil {
		return 0, false, err
	}

	return h, true, nil
}

// Regen recomputes the height at wrapped (x,y) from its dependencies,
// reusing stored dependency values but ignoring the cell's own stored
// height, and returns the displaced content alongside the new height.
// A corner is never recomputed: Regen reports its stored height unchanged,
// or ErrCornerUnset when it is empty.
// Complexity: one resolve walk.
func (m *HeightMap) Regen(x, y int) (prev, next float64, hadPrev bool, err error) {
	x, y = m.wrap(x, y)
	prev, hadPrev = m.at(x, y)

	if m.isCorner(x, y) {
		if !hadPrev {
			return 0, 0, false, fmt.Errorf("%w: corner (%d,%d)", ErrCornerUnset, x, y)
		}

		return prev, prev, true, nil
	}

	next, err = m.resolve(x, y)
	if err != nil {
		return prev, 0, hadPrev, err
	}

	return prev, next, hadPrev, nil
}
