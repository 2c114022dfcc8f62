// File: internal/galaxy/shapes_random.go
// Project: OpenHo Galaxy Core
// Description: RANDOM shape generator
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

// generateRandom scatters planets via region-uniform Poisson-disk
// rejection sampling inside a square of side gal_size * 0.85.
func generateRandom(params GenerationParameters, rng *DeterministicRNG) []Point {
	size := galSize(params.NumPlanets, params.Density)
	side := size * 0.85

	grid := NewSpatialGrid(MinPlanetDistance, side)
	region := RectangleRegion{CX: 0, CY: 0, W: side, H: side}

	return poissonDiskRegionUniform(region, MinPlanetDistance, params.NumPlanets, rng, grid, nil)
}
