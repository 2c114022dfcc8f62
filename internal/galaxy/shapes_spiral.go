// File: internal/galaxy/shapes_spiral.go
// Project: OpenHo Galaxy Core
// Description: SPIRAL shape generator — Fermat-spiral arms with a Poisson-disk core
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// fermatSpiralPoint returns the Cartesian point on a Fermat spiral
// r(theta) = a*sqrt(theta), rotated by armAngle.
func fermatSpiralPoint(a, theta, armAngle float64) Point {
	r := a * math.Sqrt(theta)
	angle := armAngle + theta
	return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// fermatSpiralArcLength estimates the arc length of the Fermat spiral
// between thetaCore and thetaOuter using a Pythagorean approximation:
// treat the radial growth and the angular sweep (at the average
// radius) as the two legs of a right triangle.
func fermatSpiralArcLength(a, thetaCore, thetaOuter float64) float64 {
	rCore := a * math.Sqrt(thetaCore)
	rOuter := a * math.Sqrt(thetaOuter)
	rAvg := (rCore + rOuter) / 2
	dr := rOuter - rCore
	dTheta := thetaOuter - thetaCore
	return math.Sqrt(dr*dr + (rAvg*dTheta)*(rAvg*dTheta))
}

// generateSpiral builds the four-phase spiral construction: draw
// shape parameters, iteratively size the core radius against an
// estimated planet count, lay down n_players arms of Fermat-spiral
// band candidates, then Poisson-disk fill the core seeded with the
// arm points so the core sampler never encroaches on them.
func generateSpiral(params GenerationParameters, rng *DeterministicRNG) []Point {
	// Phase 1: parameter draw.
	deltaTheta := math.Pi/4 + rng.NextDouble()*(math.Pi-math.Pi/4)
	a := 100.0 / math.Sqrt(deltaTheta)
	ratio := 2.0 + rng.NextDouble()*(6.0-2.0)

	// Phase 2: sizing.
	size := galSize(params.NumPlanets, params.Density)
	activeArea := size * size
	coreRadius := math.Sqrt(activeArea / math.Pi)

	var thetaCore, thetaOuter float64
	for iter := 0; iter < 10; iter++ {
		thetaCore = (coreRadius / a) * (coreRadius / a)
		thetaOuter = deltaTheta

		arcLength := fermatSpiralArcLength(a, thetaCore, thetaOuter)

		corePlanets := (coreRadius / MinPlanetDistance) * (coreRadius / MinPlanetDistance)
		planetsPerArm := arcLength / MinPlanetDistance
		estimated := corePlanets + float64(params.NumPlayers)*planetsPerArm

		n := float64(params.NumPlanets)
		if estimated < n*0.95 {
			coreRadius *= 1.05
		} else if estimated > n*1.05 {
			coreRadius *= 0.95
		} else {
			break
		}
	}

	// Final dimensions after the refinement loop.
	thetaCore = (coreRadius / a) * (coreRadius / a)
	thetaOuter = deltaTheta

	// Phase 3: arms.
	var armPoints []Point
	armAngleStep := 2 * math.Pi / float64(params.NumPlayers)
	const angularStep = 0.1
	const bandThickness = 4.0

	grid := NewSpatialGrid(MinPlanetDistance, (coreRadius*ratio)*1.5+bandThickness)

	for armIdx := 0; armIdx < params.NumPlayers; armIdx++ {
		armAngle := float64(armIdx) * armAngleStep

		for theta := thetaCore; theta <= thetaOuter; theta += angularStep {
			center := fermatSpiralPoint(a, theta, armAngle)
			anglePerp := armAngle + theta + math.Pi/2

			for offset := -bandThickness / 2; offset <= bandThickness/2; offset += 1.0 {
				cand := Point{
					X: center.X + offset*math.Cos(anglePerp),
					Y: center.Y + offset*math.Sin(anglePerp),
				}
				if len(armPoints) < params.NumPlanets && grid.IsPositionValid(cand.X, cand.Y, MinPlanetDistance) {
					grid.Insert(cand)
					armPoints = append(armPoints, cand)
				}
			}
		}
	}

	// Phase 4: core, Poisson-disk sampled and seeded with the arm
	// points already in the grid. Uses the full core_radius, not the
	// overlap-shrunk arm-inner radius, so core density matches the
	// reference sizing the refinement loop targeted.
	coreRegion := DiskRegion{CX: 0, CY: 0, R: coreRadius}
	remaining := params.NumPlanets - len(armPoints)
	var coreCoords []Point
	if remaining > 0 && coreRegion.R > 0 {
		coreCoords = poissonDiskRegionUniform(coreRegion, MinPlanetDistance, remaining, rng, grid, nil)
	}

	all := make([]Point, 0, len(armPoints)+len(coreCoords))
	all = append(all, armPoints...)
	all = append(all, coreCoords...)
	return all
}
