// File: internal/galaxy/shapes_circle.go
// Project: OpenHo Galaxy Core
// Description: CIRCLE shape generator
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// generateCircle Poisson-disk samples a single disk sized so that
// expected area per planet matches gal_size^2 / n_planets.
func generateCircle(params GenerationParameters, rng *DeterministicRNG) []Point {
	size := galSize(params.NumPlanets, params.Density)
	// Total area target is gal_size^2 (expected area-per-planet times
	// n_planets); solve disk radius from area = pi * r^2.
	radius := math.Sqrt((size * size) / math.Pi)

	grid := NewSpatialGrid(MinPlanetDistance, radius*1.5)
	region := DiskRegion{CX: 0, CY: 0, R: radius}

	return poissonDiskRegionUniform(region, MinPlanetDistance, params.NumPlanets, rng, grid, nil)
}
