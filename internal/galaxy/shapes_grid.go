// File: internal/galaxy/shapes_grid.go
// Project: OpenHo Galaxy Core
// Description: GRID shape generator — axis-aligned jittered lattice
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// gridJitterFraction sets the jitter amplitude as a fraction of
// MinPlanetDistance. It must stay below 0.5 to preserve the spacing
// invariant (I1); 0.35 keeps jitter visible without approaching that
// ceiling.
const gridJitterFraction = 0.35

// generateGrid lays planets on a square lattice spanning gal_size,
// with spacing at least MinPlanetDistance, then perturbs each point by
// a small jitter to break visual symmetry. Jitter that would violate
// the spacing invariant is discarded in favor of the exact lattice
// position, which is always itself valid against prior points.
func generateGrid(params GenerationParameters, rng *DeterministicRNG) []Point {
	size := galSize(params.NumPlanets, params.Density)

	cols := int(math.Ceil(math.Sqrt(float64(params.NumPlanets))))
	if cols < 1 {
		cols = 1
	}
	spacing := size / float64(cols)
	if spacing < MinPlanetDistance {
		spacing = MinPlanetDistance
	}

	jitterAmp := gridJitterFraction * MinPlanetDistance

	half := float64(cols-1) / 2.0
	grid := NewSpatialGrid(MinPlanetDistance, spacing*float64(cols)+jitterAmp*2)

	var result []Point
	for row := 0; row < cols && len(result) < params.NumPlanets; row++ {
		for col := 0; col < cols && len(result) < params.NumPlanets; col++ {
			base := Point{
				X: (float64(col) - half) * spacing,
				Y: (float64(row) - half) * spacing,
			}

			jx := (rng.NextDouble()*2 - 1) * jitterAmp
			jy := (rng.NextDouble()*2 - 1) * jitterAmp
			cand := Point{X: base.X + jx, Y: base.Y + jy}

			if !grid.IsPositionValid(cand.X, cand.Y, MinPlanetDistance) {
				cand = base
			}
			if !grid.IsPositionValid(cand.X, cand.Y, MinPlanetDistance) {
				continue
			}

			grid.Insert(cand)
			result = append(result, cand)
		}
	}

	return result
}
