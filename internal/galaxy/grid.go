// File: internal/galaxy/grid.go
// Project: OpenHo Galaxy Core
// Description: Uniform spatial hash grid for minimum-spacing queries
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

type cellKey struct {
	i, j int
}

// SpatialGrid buckets points by cell so that "is there a neighbor
// within r" queries only need to scan the 3x3 neighborhood around a
// candidate cell, rather than every previously placed point.
//
// Cell size is fixed to the minimum planet distance, so any point that
// would violate the spacing invariant is guaranteed to fall in that
// 3x3 window -- that is the correctness argument behind the grid.
type SpatialGrid struct {
	cellSize float64
	extent   float64
	cells    map[cellKey][]Point
}

// NewSpatialGrid creates a grid with the given cell size and a bounded
// square extent [-extent, extent]^2. Inserts outside the extent are
// accepted, but IsPositionValid reports every query outside it as
// invalid, so callers should keep coordinates within the declared
// extent.
func NewSpatialGrid(cellSize, extent float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		extent:   extent,
		cells:    make(map[cellKey][]Point),
	}
}

func (g *SpatialGrid) key(x, y float64) cellKey {
	return cellKey{
		i: int(math.Floor(x / g.cellSize)),
		j: int(math.Floor(y / g.cellSize)),
	}
}

// Insert registers a point in its bucket.
func (g *SpatialGrid) Insert(p Point) {
	k := g.key(p.X, p.Y)
	g.cells[k] = append(g.cells[k], p)
}

// IsPositionValid reports whether no previously inserted point lies
// within minDist of (x, y). Queries outside the grid's declared extent
// return false -- a conservative "invalid" rather than risking a missed
// neighbor.
func (g *SpatialGrid) IsPositionValid(x, y, minDist float64) bool {
	if math.Abs(x) > g.extent || math.Abs(y) > g.extent {
		return false
	}

	center := g.key(x, y)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			k := cellKey{i: center.i + di, j: center.j + dj}
			for _, p := range g.cells[k] {
				dx := p.X - x
				dy := p.Y - y
				if dx*dx+dy*dy < minDist*minDist {
					return false
				}
			}
		}
	}
	return true
}

// Count returns the number of points currently tracked by the grid.
func (g *SpatialGrid) Count() int {
	n := 0
	for _, pts := range g.cells {
		n += len(pts)
	}
	return n
}
