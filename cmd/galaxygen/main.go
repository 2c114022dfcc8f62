// File: cmd/galaxygen/main.go
// Project: OpenHo Galaxy Core
// Description: Command-line harness for the galaxy coordinate generator
// Version: 1.0.0
// Created: 2025-01-07

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	internalerrors "github.com/openho/galaxycore/internal/errors"
	"github.com/openho/galaxycore/internal/galaxy"
)

func main() {
	var (
		numPlanets = flag.Int("planets", 100, "Number of planets to generate [5, 500]")
		numPlayers = flag.Int("players", 2, "Number of players (home planets)")
		density    = flag.Float64("density", 0.5, "Density in (0.0, 1.0]")
		shapeName  = flag.String("shape", "RANDOM", "Shape: RANDOM, SPIRAL, CIRCLE, RING, CLUSTER, GRID")
		seed       = flag.Uint64("seed", 1, "Deterministic seed")
		retries    = flag.Int("retries", 10, "Seed retries on empty-wedge home selection failure")
		asJSON     = flag.Bool("json", false, "Emit result as JSON instead of plain text")
	)
	flag.Parse()

	shape, err := parseShape(*shapeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	params := galaxy.GenerationParameters{
		NumPlanets: *numPlanets,
		NumPlayers: *numPlayers,
		Density:    *density,
		Shape:      shape,
		Seed:       *seed,
	}

	result, err := generateWithRetry(params, *retries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printJSON(result)
		return
	}
	printPlain(result)
}

// parseShape maps a case-insensitive shape name to galaxy.Shape.
func parseShape(name string) (galaxy.Shape, error) {
	switch strings.ToUpper(name) {
	case "RANDOM":
		return galaxy.ShapeRandom, nil
	case "SPIRAL":
		return galaxy.ShapeSpiral, nil
	case "CIRCLE":
		return galaxy.ShapeCircle, nil
	case "RING":
		return galaxy.ShapeRing, nil
	case "CLUSTER":
		return galaxy.ShapeCluster, nil
	case "GRID":
		return galaxy.ShapeGrid, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", name)
	}
}

// generateWithRetry re-seeds and retries generation when home
// selection hits an empty wedge (galaxy.ErrEmptyWedge), through the
// exponential-backoff retry helper. Every other error is returned
// at once without a retry.
func generateWithRetry(params galaxy.GenerationParameters, maxRetries int) (galaxy.GeneratedGalaxy, error) {
	config := internalerrors.DefaultRetryConfig()
	config.MaxAttempts = maxRetries + 1

	attempt := 0
	return internalerrors.RetryWithResult(context.Background(), func() (galaxy.GeneratedGalaxy, error) {
		p := params
		p.Seed += uint64(attempt)
		attempt++
		return galaxy.Generate(p)
	}, config, func(err error) bool {
		return err == galaxy.ErrEmptyWedge
	})
}

func printPlain(g galaxy.GeneratedGalaxy) {
	fmt.Printf("points: %d\n", len(g.Points))
	for i, p := range g.Points {
		fmt.Printf("%d\t%.6f\t%.6f\n", i, p.X, p.Y)
	}
	fmt.Printf("homes: %v\n", g.HomeIndices)
}

func printJSON(g galaxy.GeneratedGalaxy) {
	type point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	out := struct {
		Points []point `json:"points"`
		Homes  []int   `json:"home_indices"`
	}{
		Points: make([]point, len(g.Points)),
		Homes:  g.HomeIndices,
	}
	for i, p := range g.Points {
		out.Points[i] = point{X: p.X, Y: p.Y}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		os.Exit(1)
	}
}
