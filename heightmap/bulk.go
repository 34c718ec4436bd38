// Package heightmap - bulk operations: thin row-major wrappers over the
// single-cell reads, writes and generations.
package heightmap

import (
	"fmt"
)

// areaBounds wraps both rectangle corners onto the torus. The rectangle is
// inclusive on all edges; a wrapped upper corner falling below the lower
// one yields an empty area.
func (m *HeightMap) areaBounds(x0, y0, x1, y1 int) (ax0, ay0, ax1, ay1 int, ok bool) {
	x0, y0 = m.wrap(x0, y0)
	x1, y1 = m.wrap(x1, y1)
	if x1 < x0 || y1 < y0 {
		return 0, 0, 0, 0, false
	}

	return x0, y0, x1, y1, true
}

// GetArea reads every cell of the inclusive rectangle (x0,y0)-(x1,y1),
// row-major, top to bottom and left to right after wrapping the corners.
// Complexity: O(area).
func (m *HeightMap) GetArea(x0, y0, x1, y1 int) []Cell {
	x0, y0, x1, y1, ok := m.areaBounds(x0, y0, x1, y1)
	if !ok {
		return nil
	}

	cells := make([]Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			h, known := m.at(x, y)
			cells = append(cells, Cell{X: x, Y: y, Height: h, Known: known})
		}
	}

	return cells
}

// SetArea stores h into every cell of the inclusive rectangle and returns
// the displaced contents, row-major: each Cell reports the height that was
// there before (Known false for previously empty cells).
// Complexity: O(area).
func (m *HeightMap) SetArea(h float64, x0, y0, x1, y1 int) []Cell {
	x0, y0, x1, y1, ok := m.areaBounds(x0, y0, x1, y1)
	if !ok {
		return nil
	}

	cells := make([]Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			prev, hadPrev := m.at(x, y)
			m.put(x, y, h)
			cells = append(cells, Cell{X: x, Y: y, Height: prev, Known: hadPrev})
		}
	}

	return cells
}

// GenArea generates every cell of the inclusive rectangle, row-major, and
// returns the resolved heights (Known is always true in the result). On a
// resolver error the cells generated so far are returned alongside the
// error, which names the failing coordinate.
// Complexity: O(area) resolve walks; cells already stored cost O(1).
func (m *HeightMap) GenArea(x0, y0, x1, y1 int) ([]Cell, error) {
	x0, y0, x1, y1, ok := m.areaBounds(x0, y0, x1, y1)
	if !ok {
		return nil, nil
	}

	cells := make([]Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			h, _, err := m.Gen(x, y)
			if err != nil {
				return cells, fmt.Errorf("heightmap: generate (%d,%d): %w", x, y, err)
			}
			cells = append(cells, Cell{X: x, Y: y, Height: h, Known: true})
		}
	}

	return cells, nil
}

// GetAll reads the whole grid; see GetArea.
func (m *HeightMap) GetAll() []Cell {
	return m.GetArea(0, 0, m.maxCoord, m.maxCoord)
}

// SetAll stores h into the whole grid and returns the displaced contents;
// see SetArea.
func (m *HeightMap) SetAll(h float64) []Cell {
	return m.SetArea(h, 0, 0, m.maxCoord, m.maxCoord)
}

// GenAll generates the whole grid; see GenArea.
func (m *HeightMap) GenAll() ([]Cell, error) {
	return m.GenArea(0, 0, m.maxCoord, m.maxCoord)
}
