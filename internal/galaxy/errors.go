// File: internal/galaxy/errors.go
// Project: OpenHo Galaxy Core
// Description: Error taxonomy for parameter validation and generation failures
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "errors"

// Sentinel errors surfaced by Generate. Callers distinguish them with
// errors.Is. This module has no binding layer; an external one would
// flatten them to a diagnostic string.
var (
	// ErrInvalidPlanetCount is returned when NumPlanets falls outside [5, 500].
	ErrInvalidPlanetCount = errors.New("galaxy: n_planets must be in [5, 500]")

	// ErrInvalidPlayerCount is returned when NumPlayers is zero.
	ErrInvalidPlayerCount = errors.New("galaxy: n_players must be greater than 0")

	// ErrInvalidDensity is returned when Density is outside (0.0, 1.0].
	ErrInvalidDensity = errors.New("galaxy: density must be in (0.0, 1.0]")

	// ErrInvalidShape is returned for an unrecognized shape value.
	ErrInvalidShape = errors.New("galaxy: unknown shape")

	// ErrEmptyWedge is returned by the home-planet selector when the
	// drawn angular offset leaves at least one wedge with zero points.
	// This is fatal for the current seed; the caller is expected to
	// retry with a different seed (see Retry in internal/errors).
	ErrEmptyWedge = errors.New("galaxy: home selection wedge is empty for this seed")

	// ErrInvariantViolation indicates the spatial grid reported a
	// position valid but the resulting distance was in fact below
	// MinPlanetDistance. This must never occur; its presence signals a
	// bug in the grid or a shape generator, not a data problem.
	ErrInvariantViolation = errors.New("galaxy: internal invariant violation: spacing below minimum")
)

// ValidateParameters performs the parameter validation required before
// any RNG work begins. It does not mutate params.
func ValidateParameters(params GenerationParameters) error {
	if params.NumPlanets < 5 || params.NumPlanets > 500 {
		return ErrInvalidPlanetCount
	}
	if params.NumPlayers <= 0 {
		return ErrInvalidPlayerCount
	}
	if params.Density <= 0.0 || params.Density > 1.0 {
		return ErrInvalidDensity
	}
	if !params.Shape.IsValid() {
		return ErrInvalidShape
	}
	return nil
}
