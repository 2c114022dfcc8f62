// File: internal/galaxy/shapes_cluster.go
// Project: OpenHo Galaxy Core
// Description: CLUSTER shape generator — one disk per player, arranged in a ring
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// generateCluster places n_clusters = n_players disks around a ring
// and fills each with a target share of the planets. The formulas
// below (cluster_radius, spacing_factor, desired_spacing, ring_radius)
// match the reference cluster-generation simulation bit for bit.
func generateCluster(params GenerationParameters, rng *DeterministicRNG) []Point {
	nClusters := params.NumPlayers
	size := galSize(params.NumPlanets, params.Density)

	clusterRadius := size / (2 * math.Sqrt(float64(nClusters)))
	spacingFactor := 1.1 + (1-params.Density)*0.9
	desiredSpacing := 2 * clusterRadius * spacingFactor
	ringRadius := desiredSpacing * float64(nClusters) / (2 * math.Pi)

	grid := NewSpatialGrid(MinPlanetDistance, (ringRadius+clusterRadius)*1.5)

	base := params.NumPlanets / nClusters
	remainder := params.NumPlanets % nClusters

	var all []Point
	for k := 0; k < nClusters; k++ {
		target := base
		if k < remainder {
			target++
		}

		angle := (2 * math.Pi * float64(k)) / float64(nClusters)
		center := Point{
			X: ringRadius * math.Cos(angle),
			Y: ringRadius * math.Sin(angle),
		}

		maxAttempts := target * 10
		placed := 0
		for attempts := 0; placed < target && attempts < maxAttempts; attempts++ {
			angleOffset := rng.NextDouble() * 2 * math.Pi
			radiusOffset := rng.NextDouble() * clusterRadius

			cand := Point{
				X: center.X + radiusOffset*math.Cos(angleOffset),
				Y: center.Y + radiusOffset*math.Sin(angleOffset),
			}

			if grid.IsPositionValid(cand.X, cand.Y, MinPlanetDistance) {
				grid.Insert(cand)
				all = append(all, cand)
				placed++
			}
		}
	}

	return all
}
