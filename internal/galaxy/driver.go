// File: internal/galaxy/driver.go
// Project: OpenHo Galaxy Core
// Description: Parameter validation, shape dispatch, and output assembly
// Version: 1.0.0
// Created: 2025-01-07

// Package galaxy implements the galaxy coordinate generator: a
// deterministic, seeded pipeline that turns high-level parameters
// (planet count, player count, density, shape) into a 2D point set and
// a set of home-planet indices for a turn-based space-strategy game.
//
// The package is single-threaded and synchronous by design -- every
// RNG draw happens in the lexical order the algorithms specify, and
// reordering them (even for "obvious" parallelism) breaks the
// determinism contract callers rely on. Multiple calls to Generate may
// run concurrently as long as each uses its own DeterministicRNG.
package galaxy

import (
	"github.com/google/uuid"

	"github.com/openho/galaxycore/internal/logger"
)

var log = logger.WithComponent("Galaxy")

// Generate runs the full pipeline: validate params, construct the
// deterministic RNG from params.Seed, dispatch to the chosen shape
// generator, select home planets, and assemble the result.
//
// Generate never panics on bad input; validation failures and
// generation failures are both returned as errors satisfying
// errors.Is against the sentinels in errors.go.
func Generate(params GenerationParameters) (GeneratedGalaxy, error) {
	runID := uuid.New()

	if err := ValidateParameters(params); err != nil {
		log.Debug("run=%s rejected parameters: %v", runID, err)
		return GeneratedGalaxy{}, err
	}

	log.Debug("run=%s generating shape=%s n_planets=%d n_players=%d density=%.2f seed=%d",
		runID, params.Shape, params.NumPlanets, params.NumPlayers, params.Density, params.Seed)

	// Only the first seed feeds coordinate generation; the second
	// stream is reserved for non-generation consumers (see rng.go).
	rng := NewDeterministicRNG(params.Seed, params.Seed)

	points := dispatchShape(params, rng)

	homes, err := selectHomes(points, params.NumPlayers, rng)
	if err != nil {
		log.Warn("run=%s home selection failed: %v", runID, err)
		return GeneratedGalaxy{}, err
	}

	log.Debug("run=%s placed %d/%d points, %d homes", runID, len(points), params.NumPlanets, len(homes))

	return GeneratedGalaxy{Points: points, HomeIndices: homes}, nil
}

// dispatchShape runs the shape-specific coordinate algorithm. Each
// branch consumes RNG draws in a fixed order; no branch may be
// reordered relative to its own internal steps without breaking
// reproducibility for that shape.
func dispatchShape(params GenerationParameters, rng *DeterministicRNG) []Point {
	switch params.Shape {
	case ShapeRandom:
		return generateRandom(params, rng)
	case ShapeSpiral:
		return generateSpiral(params, rng)
	case ShapeCircle:
		return generateCircle(params, rng)
	case ShapeRing:
		return generateRing(params, rng)
	case ShapeCluster:
		return generateCluster(params, rng)
	case ShapeGrid:
		return generateGrid(params, rng)
	default:
		return nil
	}
}
