// File: internal/galaxy/shapes_ring.go
// Project: OpenHo Galaxy Core
// Description: RING shape generator
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// ringInnerOuterRatio fixes the inner/outer radius relationship so the
// band reads as a ring rather than a filled disk. 0.55 matches the
// reference simulation's default calibration.
const ringInnerOuterRatio = 0.55

// generateRing Poisson-disk samples an annulus whose area matches
// gal_size^2 * 0.85, with inner radius fixed at ringInnerOuterRatio of
// the outer radius.
func generateRing(params GenerationParameters, rng *DeterministicRNG) []Point {
	size := galSize(params.NumPlanets, params.Density)
	targetArea := size * size * 0.85

	// area = pi * (outer^2 - inner^2) = pi * outer^2 * (1 - ratio^2)
	outer := math.Sqrt(targetArea / (math.Pi * (1 - ringInnerOuterRatio*ringInnerOuterRatio)))
	inner := outer * ringInnerOuterRatio

	grid := NewSpatialGrid(MinPlanetDistance, outer*1.5)
	region := AnnulusRegion{CX: 0, CY: 0, RInner: inner, ROuter: outer}

	return poissonDiskRegionUniform(region, MinPlanetDistance, params.NumPlanets, rng, grid, nil)
}
