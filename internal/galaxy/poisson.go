// File: internal/galaxy/poisson.go
// Project: OpenHo Galaxy Core
// Description: Bridson-style Poisson-disk sampler constrained to a region
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// poissonAttemptsPerPoint bounds how many candidates are tried around
// each active point before it is retired. Bridson's original paper
// uses k=30. CLUSTER uses its own 10x-target budget directly instead of
// this constant, since it grows disks rather than an active list.
const poissonAttemptsPerPoint = 30

// poissonDisk runs Bridson-style dart throwing inside region, honoring
// any pre-existing seed points (which block candidates but are not
// themselves re-emitted). It stops when maxPoints have been emitted,
// the active list empties, or attempts are exhausted for every active
// point.
func poissonDisk(region Region, minDist float64, maxPoints int, rng *DeterministicRNG, grid *SpatialGrid, seeds []Point) []Point {
	for _, s := range seeds {
		grid.Insert(s)
	}

	result := make([]Point, 0, maxPoints)
	active := append([]Point(nil), seeds...)

	// Add an initial region-uniform sample to the active list so
	// generation can proceed even when seeds is empty.
	if maxPoints > 0 {
		if p, ok := sampleRegionUniform(region, minDist, rng, grid); ok {
			grid.Insert(p)
			result = append(result, p)
			active = append(active, p)
		}
	}

	for len(active) > 0 && len(result) < maxPoints {
		idx := int(rng.NextIntRange(0, int64(len(active)-1)))
		base := active[idx]

		placed := false
		for attempt := 0; attempt < poissonAttemptsPerPoint; attempt++ {
			cand := annulusCandidate(base, minDist, rng)
			if !region.Contains(cand) {
				continue
			}
			if !grid.IsPositionValid(cand.X, cand.Y, minDist) {
				continue
			}
			grid.Insert(cand)
			result = append(result, cand)
			active = append(active, cand)
			placed = true
			if len(result) >= maxPoints {
				break
			}
			break
		}

		if !placed {
			// Retire this active point: swap-remove.
			active[idx] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return result
}

// annulusCandidate draws a point uniformly within [minDist, 2*minDist)
// of base, as Bridson's algorithm prescribes for new candidates.
func annulusCandidate(base Point, minDist float64, rng *DeterministicRNG) Point {
	r := minDist + rng.NextDouble()*minDist
	theta := 2 * math.Pi * rng.NextDouble()
	return Point{X: base.X + r*math.Cos(theta), Y: base.Y + r*math.Sin(theta)}
}

// sampleRegionUniform performs rejection sampling directly from region
// (no annulus attraction) until the grid accepts a candidate or the
// attempt budget is exhausted. Shapes that need purely region-uniform
// seeding (rather than Bridson's active-list growth) reach this
// through poissonDiskRegionUniform instead of poissonDisk.
func sampleRegionUniform(region Region, minDist float64, rng *DeterministicRNG, grid *SpatialGrid) (Point, bool) {
	for attempt := 0; attempt < poissonAttemptsPerPoint; attempt++ {
		cand := region.Sample(rng)
		if grid.IsPositionValid(cand.X, cand.Y, minDist) {
			return cand, true
		}
	}
	return Point{}, false
}

// poissonDiskRegionUniform fills region with up to maxPoints via
// direct region-uniform rejection sampling (not Bridson growth).
// Seeds block candidates and are not re-emitted. RANDOM, CIRCLE, and
// RING use this mode since they want uniform coverage with no annulus
// attraction toward existing points.
func poissonDiskRegionUniform(region Region, minDist float64, maxPoints int, rng *DeterministicRNG, grid *SpatialGrid, seeds []Point) []Point {
	for _, s := range seeds {
		grid.Insert(s)
	}

	result := make([]Point, 0, maxPoints)
	consecutiveFailures := 0
	maxConsecutiveFailures := poissonAttemptsPerPoint * 4

	for len(result) < maxPoints && consecutiveFailures < maxConsecutiveFailures {
		p, ok := sampleRegionUniform(region, minDist, rng, grid)
		if !ok {
			consecutiveFailures++
			continue
		}
		consecutiveFailures = 0
		grid.Insert(p)
		result = append(result, p)
	}

	return result
}
